package envmap

import "strings"

// Kind describes how a binding turns variable values into tokens.
type Kind int

const (
	// Scalar appends the introducing alias followed by the variable value.
	Scalar Kind = iota
	// List splits the value on whitespace and appends every element.
	List
	// Pair is driven by two variables; whichever are non-empty are appended
	// after the introducing alias, in declaration order.
	Pair
)

// Binding ties one or more environment variables to the aliases of a single
// option. Aliases[0] is the token appended when the option is absent.
type Binding struct {
	Vars     []string
	Aliases  []string
	Kind     Kind
	Fallback string
}

// Derivation is what a binding contributes for a given snapshot: the aliases to
// test for presence and the tokens to append when none of them is present.
type Derivation struct {
	Aliases []string
	Tokens  []string
}

// Derive evaluates bindings against snap in declaration order. Bindings whose
// variables are all empty (and that have no fallback) contribute nothing.
func Derive(bindings []Binding, snap Snapshot) []Derivation {
	out := make([]Derivation, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Aliases) == 0 || len(b.Vars) == 0 {
			continue
		}

		values := b.values(snap)
		if len(values) == 0 {
			continue
		}

		tokens := make([]string, 0, len(values)+1)
		tokens = append(tokens, b.Aliases[0])
		tokens = append(tokens, values...)
		out = append(out, Derivation{
			Aliases: append([]string(nil), b.Aliases...),
			Tokens:  tokens,
		})
	}
	return out
}

func (b Binding) values(snap Snapshot) []string {
	switch b.Kind {
	case List:
		if fields := strings.Fields(snap.Get(b.Vars[0])); len(fields) > 0 {
			return fields
		}
	case Pair:
		var values []string
		for _, name := range b.Vars {
			if v := snap.Get(name); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			return values
		}
	default:
		if v := snap.Get(b.Vars[0]); v != "" {
			return []string{v}
		}
	}

	if b.Fallback != "" {
		return []string{b.Fallback}
	}
	return nil
}
