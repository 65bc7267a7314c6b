package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eugenenazirov/envargs/internal/schema"
)

var checker = validator.New(validator.WithRequiredStructEnabled())

// Tag checks that the option has exactly one token satisfying the validator
// tag expression (e.g. "min=3,max=20"). The token is trimmed first.
func Tag(tag, message string) OptionRule {
	return func(_ schema.Option, tokens []string) error {
		if len(tokens) != 1 {
			return errors.New(message)
		}
		if err := checker.Var(strings.TrimSpace(tokens[0]), tag); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

// Length checks a single string value is between min and max characters.
func Length(minLen, maxLen int, message string) OptionRule {
	return Tag(fmt.Sprintf("min=%d,max=%d", minLen, maxLen), message)
}

// IntAtLeast checks a single integer value is >= minValue. Tokens that are not
// integers are left to the parser, which already reported them.
func IntAtLeast(minValue int) OptionRule {
	return func(opt schema.Option, tokens []string) error {
		message := fmt.Sprintf("%s must be an integer >= %d", opt.Name, minValue)
		if len(tokens) != 1 {
			return errors.New(message)
		}
		n, ok := schema.ParseInt(tokens[0])
		if !ok {
			return nil
		}
		if err := checker.Var(n, fmt.Sprintf("gte=%d", minValue)); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

// OneOf checks a single value is a case-insensitive member of allowed. A bare
// option that falls back to its default passes.
func OneOf(message string, allowed ...string) OptionRule {
	upper := make([]string, 0, len(allowed))
	for _, a := range allowed {
		upper = append(upper, strings.ToUpper(a))
	}
	tag := "oneof=" + strings.Join(upper, " ")

	return func(opt schema.Option, tokens []string) error {
		if len(tokens) == 0 && opt.OptionalValue && opt.HasDefault() {
			return nil
		}
		if len(tokens) != 1 || strings.TrimSpace(tokens[0]) == "" {
			return errors.New(message)
		}
		if err := checker.Var(strings.ToUpper(strings.TrimSpace(tokens[0])), tag); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

// TokenCount checks the option was given exactly n tokens.
func TokenCount(n int, message string) OptionRule {
	return func(_ schema.Option, tokens []string) error {
		if len(tokens) != n {
			return errors.New(message)
		}
		return nil
	}
}

// FilesExist checks every token names a regular file under dir in fsys. All
// missing names are reported in one message.
func FilesExist(fsys fs.FS, dir string) OptionRule {
	return func(_ schema.Option, tokens []string) error {
		var missing []string
		for _, name := range tokens {
			if !fileExists(fsys, dir, name) {
				missing = append(missing, name)
			}
		}

		switch len(missing) {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("File not found: %s", missing[0])
		default:
			return fmt.Errorf("Files not found: %s", strings.Join(missing, ", "))
		}
	}
}

func fileExists(fsys fs.FS, dir, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p := path.Join(dir, name)
	if !fs.ValidPath(p) {
		return false
	}
	if root := path.Clean(dir); root != "." && !strings.HasPrefix(p, root+"/") {
		return false
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && !info.IsDir()
}

// RequiresTrue fails when dependent was given an affirmative value while
// companion was not explicitly set to true.
func RequiresTrue(companion, dependent schema.OptionID, message string) RootRule {
	return func(r *schema.Result) error {
		if Affirmative(r, dependent) && !ExplicitTrue(r, companion) {
			return errors.New(message)
		}
		return nil
	}
}

// ExplicitTrue reports whether a flag option was given and resolves to true.
func ExplicitTrue(r *schema.Result, id schema.OptionID) bool {
	if !r.Has(id) {
		return false
	}
	v, ok := r.Bool(id)
	return ok && v
}

// Affirmative reports whether an option was given with a value other than its
// type's zero: true for flags, a positive number for ints, a non-empty string.
func Affirmative(r *schema.Result, id schema.OptionID) bool {
	if !r.Has(id) {
		return false
	}
	opt, ok := r.Schema().Option(id)
	if !ok {
		return false
	}

	switch {
	case opt.Arity == schema.ArityFlag || opt.Type == schema.TypeBool:
		v, ok := r.Bool(id)
		return ok && v
	case opt.Type == schema.TypeInt:
		n, ok := r.Int(id)
		return ok && n > 0
	default:
		v, ok := r.String(id)
		return ok && v != ""
	}
}
