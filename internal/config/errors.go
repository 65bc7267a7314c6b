package config

import "errors"

// ErrConfiguration is returned when a builder is handed a report that still
// carries errors, or produces a value that breaks its own invariants. It is a
// programming error, never a user input problem.
var ErrConfiguration = errors.New("configuration error")
