package schema

import (
	"strconv"
	"strings"
)

// OptionID is the internal identity of an option. Zero is never a valid ID.
type OptionID int

// Arity is the number of value tokens an option consumes.
type Arity int

const (
	// ArityFlag consumes zero or one boolean token.
	ArityFlag Arity = iota
	// AritySingle consumes exactly one token.
	AritySingle
	// ArityMulti consumes every following argument token.
	ArityMulti
)

func (a Arity) String() string {
	switch a {
	case ArityFlag:
		return "flag"
	case AritySingle:
		return "single-value"
	case ArityMulti:
		return "multi-value"
	default:
		return "unknown"
	}
}

// ValueType is the type each value token must parse as.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt
	TypeBool
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// Option declares one supported option. A single-value option with
// OptionalValue set may be given bare and then resolves to its default.
type Option struct {
	ID            OptionID
	Name          string
	Aliases       []string
	Arity         Arity
	Type          ValueType
	Default       []string
	Required      bool
	OptionalValue bool
	Help          string
}

// HasDefault reports whether the option declares a default value.
func (o Option) HasDefault() bool {
	return o.Default != nil
}

// LongAlias returns the first alias starting with "--", or the first alias.
func (o Option) LongAlias() string {
	for _, a := range o.Aliases {
		if strings.HasPrefix(a, "--") {
			return a
		}
	}
	if len(o.Aliases) > 0 {
		return o.Aliases[0]
	}
	return "--" + o.Name
}

// ShortAlias returns the single-dash, single-character alias if one exists.
func (o Option) ShortAlias() (rune, bool) {
	for _, a := range o.Aliases {
		if len(a) == 2 && a[0] == '-' && a[1] != '-' {
			return rune(a[1]), true
		}
	}
	return 0, false
}

func (o Option) valueType() ValueType {
	if o.Arity == ArityFlag {
		return TypeBool
	}
	return o.Type
}

// ParseBool accepts "true" and "false" in any case.
func ParseBool(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}

// ParseInt parses a base-10 integer token.
func ParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
