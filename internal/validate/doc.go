// Package validate runs per-option and cross-option rules against a parse
// result. Rules never short-circuit: every failing rule contributes its message
// so the caller can fix everything in one pass.
package validate
