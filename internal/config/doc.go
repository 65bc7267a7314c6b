// Package config declares the complex-app option set, the environment
// variables that feed it and the rules it must satisfy, and materializes a
// validated parse into a strongly typed Config.
//
// Precedence: command-line arguments > environment variables > defaults.
package config
