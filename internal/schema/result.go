package schema

// Match records what the parser saw for one option.
type Match struct {
	Alias       string
	Tokens      []string
	Occurrences int
}

// Result is the write-once outcome of Parse.
type Result struct {
	schema  *Schema
	matches map[OptionID]*Match
	errors  Errors
}

func (r *Result) fail(kind ErrorKind, option, message string) {
	r.errors = append(r.errors, Error{Kind: kind, Option: option, Message: message})
}

// Schema returns the schema the result was parsed with.
func (r *Result) Schema() *Schema { return r.schema }

// Errors returns the parse errors in the order they were found.
func (r *Result) Errors() Errors {
	return append(Errors(nil), r.errors...)
}

// Has reports whether the option was explicitly given.
func (r *Result) Has(id OptionID) bool {
	return r.matches[id] != nil
}

// Tokens returns the value tokens explicitly given for the option.
func (r *Result) Tokens(id OptionID) []string {
	m := r.matches[id]
	if m == nil {
		return nil
	}
	return append([]string{}, m.Tokens...)
}

// Alias returns the alias the option was given with, or "" when absent.
func (r *Result) Alias(id OptionID) string {
	if m := r.matches[id]; m != nil {
		return m.Alias
	}
	return ""
}

// Values returns the explicit tokens for the option, a bare flag as "true",
// or the declared default when the option was not given.
func (r *Result) Values(id OptionID) []string {
	opt, ok := r.schema.Option(id)
	if !ok {
		return nil
	}
	m := r.matches[id]
	if m == nil {
		return append([]string(nil), opt.Default...)
	}
	if opt.Arity == ArityFlag && len(m.Tokens) == 0 {
		return []string{"true"}
	}
	if len(m.Tokens) == 0 && (opt.Arity == ArityMulti || opt.OptionalValue) && opt.HasDefault() {
		return append([]string(nil), opt.Default...)
	}
	return append([]string{}, m.Tokens...)
}

// String returns the single value of the option.
func (r *Result) String(id OptionID) (string, bool) {
	values := r.Values(id)
	if len(values) != 1 {
		return "", false
	}
	return values[0], true
}

// Int returns the integer value of the option. ok is false when there is no
// value or it does not parse.
func (r *Result) Int(id OptionID) (int, bool) {
	v, ok := r.String(id)
	if !ok {
		return 0, false
	}
	return ParseInt(v)
}

// Bool returns the boolean value of the option.
func (r *Result) Bool(id OptionID) (bool, bool) {
	v, ok := r.String(id)
	if !ok {
		return false, false
	}
	return ParseBool(v)
}

// Strings returns every value of the option.
func (r *Result) Strings(id OptionID) []string {
	return r.Values(id)
}
