package schema

import "fmt"

// Parse matches args against the schema. It never stops at the first problem:
// every unknown token, arity conflict and missing required option is recorded
// in the returned Result.
func (s *Schema) Parse(args []string) *Result {
	r := &Result{
		schema:  s,
		matches: make(map[OptionID]*Match, len(s.options)),
	}

	for i := 0; i < len(args); i++ {
		token := args[i]
		opt, alias, inline, hasInline, ok := s.lookup(token)
		if !ok {
			r.fail(KindParse, "", fmt.Sprintf("Unrecognized command or argument '%s'", token))
			continue
		}

		m := r.matches[opt.ID]
		if m == nil {
			m = &Match{Alias: alias}
			r.matches[opt.ID] = m
		}
		m.Occurrences++
		if m.Occurrences == 2 && opt.Arity != ArityMulti {
			r.fail(KindParse, opt.Name, fmt.Sprintf("Option '%s' was specified more than once", opt.LongAlias()))
		}

		var values []string
		if hasInline {
			values = append(values, inline)
		}

		switch opt.Arity {
		case ArityFlag:
			if !hasInline && s.isArgument(args, i+1) {
				i++
				values = append(values, args[i])
			}
		case AritySingle:
			if !hasInline {
				if !s.isArgument(args, i+1) {
					if opt.OptionalValue && opt.HasDefault() {
						break
					}
					r.fail(KindParse, opt.Name, fmt.Sprintf("Required argument missing for option: %s", alias))
					continue
				}
				i++
				values = append(values, args[i])
			}
		case ArityMulti:
			for s.isArgument(args, i+1) {
				i++
				values = append(values, args[i])
			}
		}

		for _, v := range values {
			if !convertible(opt.valueType(), v) {
				r.fail(KindParse, opt.Name, fmt.Sprintf("Cannot parse argument '%s' for option '%s' as expected type %s", v, alias, opt.valueType()))
			}
		}
		m.Tokens = append(m.Tokens, values...)
	}

	for _, opt := range s.options {
		if opt.Required && r.matches[opt.ID] == nil {
			r.fail(KindParse, opt.Name, fmt.Sprintf("Option '%s' is required.", opt.LongAlias()))
		}
	}

	return r
}

func (s *Schema) isArgument(args []string, i int) bool {
	return i < len(args) && !s.IsOptionToken(args[i])
}

func convertible(t ValueType, v string) bool {
	switch t {
	case TypeInt:
		_, ok := ParseInt(v)
		return ok
	case TypeBool:
		_, ok := ParseBool(v)
		return ok
	default:
		return true
	}
}
