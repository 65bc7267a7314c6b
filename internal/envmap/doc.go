// Package envmap maps environment variables to the command-line tokens they
// stand for. It works on an immutable Snapshot captured once at process start,
// so everything downstream is a pure function of (args, snapshot).
package envmap
