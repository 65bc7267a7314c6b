package schema

import (
	"fmt"
	"strings"
)

// Schema is an immutable table of options forming a program's grammar.
type Schema struct {
	name        string
	description string
	options     []Option
	byID        map[OptionID]int
	byAlias     map[string]int
}

// New validates options and builds a Schema. IDs must be non-zero and unique,
// every option needs at least one alias, and aliases are unique schema-wide.
func New(name, description string, options ...Option) (*Schema, error) {
	s := &Schema{
		name:        name,
		description: description,
		options:     make([]Option, 0, len(options)),
		byID:        make(map[OptionID]int, len(options)),
		byAlias:     make(map[string]int, 2*len(options)),
	}

	for _, opt := range options {
		if opt.ID == 0 {
			return nil, fmt.Errorf("%w: option %q has zero id", ErrInvalidSchema, opt.Name)
		}
		if _, dup := s.byID[opt.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id for option %q", ErrInvalidSchema, opt.Name)
		}
		if len(opt.Aliases) == 0 {
			return nil, fmt.Errorf("%w: option %q has no aliases", ErrInvalidSchema, opt.Name)
		}

		idx := len(s.options)
		for _, alias := range opt.Aliases {
			if !strings.HasPrefix(alias, "-") || strings.Contains(alias, "=") {
				return nil, fmt.Errorf("%w: malformed alias %q", ErrInvalidSchema, alias)
			}
			if other, dup := s.byAlias[alias]; dup {
				return nil, fmt.Errorf("%w: alias %q used by %q and %q", ErrInvalidSchema, alias, s.options[other].Name, opt.Name)
			}
			s.byAlias[alias] = idx
		}

		opt.Aliases = append([]string(nil), opt.Aliases...)
		if opt.Default != nil {
			opt.Default = append([]string{}, opt.Default...)
		}
		s.byID[opt.ID] = idx
		s.options = append(s.options, opt)
	}

	return s, nil
}

// MustNew is New that panics on an invalid table. Meant for package-level
// option tables that are fixed at compile time.
func MustNew(name, description string, options ...Option) *Schema {
	s, err := New(name, description, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the program name.
func (s *Schema) Name() string { return s.name }

// Description returns the program description.
func (s *Schema) Description() string { return s.description }

// Options returns the options in declaration order.
func (s *Schema) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Option returns the option declared with id.
func (s *Schema) Option(id OptionID) (Option, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Option{}, false
	}
	return s.options[idx], true
}

// lookup classifies a token. It returns the matched option and, for the
// "alias=value" form, the inline value.
func (s *Schema) lookup(token string) (opt *Option, alias, inline string, hasInline, ok bool) {
	if idx, found := s.byAlias[token]; found {
		return &s.options[idx], token, "", false, true
	}
	if eq := strings.IndexByte(token, '='); eq > 0 {
		if idx, found := s.byAlias[token[:eq]]; found {
			return &s.options[idx], token[:eq], token[eq+1:], true, true
		}
	}
	return nil, "", "", false, false
}

// IsOptionToken reports whether token names one of the schema's options.
func (s *Schema) IsOptionToken(token string) bool {
	_, _, _, _, ok := s.lookup(token)
	return ok
}
