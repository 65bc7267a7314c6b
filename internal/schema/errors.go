package schema

import (
	"errors"
	"strings"
)

// Root names the pseudo-option that cross-option errors are attached to.
const Root = "root"

// ErrInvalidSchema is returned by New when the option table is inconsistent.
var ErrInvalidSchema = errors.New("invalid option schema")

// ErrorKind separates grammar failures from semantic ones.
type ErrorKind int

const (
	// KindParse covers unknown tokens, wrong arity and missing required options.
	KindParse ErrorKind = iota
	// KindValidation covers values that parsed but are semantically invalid.
	KindValidation
)

func (k ErrorKind) String() string {
	if k == KindValidation {
		return "validation"
	}
	return "parse"
}

// Error is a single user-facing problem. Option is the option name, Root for
// cross-option rules, or empty for tokens that match no option at all.
type Error struct {
	Kind    ErrorKind
	Option  string
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// Errors is an ordered collection of problems reported together.
type Errors []Error

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "\n")
}

// Messages returns every message in order.
func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, err := range e {
		out = append(out, err.Message)
	}
	return out
}

// For returns the errors attached to option.
func (e Errors) For(option string) Errors {
	var out Errors
	for _, err := range e {
		if err.Option == option {
			out = append(out, err)
		}
	}
	return out
}
