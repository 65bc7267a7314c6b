// Package application wires the configuration pipeline for a program:
// version and help short-circuits, environment merging, parsing, validation,
// and finally building the configuration and handing it to the program's run
// or dry-run step. It keeps the main packages down to capturing process
// inputs and exiting with the returned code.
package application
