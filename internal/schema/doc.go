// Package schema declares the flat option grammar accepted by a program and
// parses an argument list against it. Options are identified internally by an
// enumerated OptionID; aliases are only used at the string boundary.
package schema
