// Package usage renders help text for a schema. The schema is mirrored into a
// kingpin application purely for its usage formatting; parsing stays with the
// schema package.
package usage

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/envargs/internal/schema"
)

// Render writes usage for s to w. When version is non-empty a --version flag
// is listed too.
func Render(w io.Writer, s *schema.Schema, version string) error {
	app, err := Application(s, version)
	if err != nil {
		return err
	}
	app.UsageWriter(w)

	ctx, err := app.ParseContext(nil)
	if err != nil {
		return fmt.Errorf("build usage context: %w", err)
	}
	if err := app.UsageForContextWithTemplate(ctx, 2, kingpin.DefaultUsageTemplate); err != nil {
		return fmt.Errorf("render usage: %w", err)
	}
	return nil
}

// Application mirrors s into a kingpin application.
func Application(s *schema.Schema, version string) (*kingpin.Application, error) {
	app := kingpin.New(s.Name(), s.Description())
	app.HelpFlag.Short('h').Help("Show help.")
	app.Terminate(nil)
	if version != "" {
		app.Version(version)
	}

	flags := make(map[string]bool)
	for _, opt := range s.Options() {
		name := strings.TrimPrefix(opt.LongAlias(), "--")
		if name == "" || strings.HasPrefix(name, "-") {
			return nil, fmt.Errorf("option %q has no long alias", opt.Name)
		}

		flag := app.Flag(name, help(opt))
		if r, ok := opt.ShortAlias(); ok {
			flag.Short(r)
		}
		if opt.Required {
			flag.Required()
		} else if opt.HasDefault() {
			flag.Default(opt.Default...)
		}

		switch {
		case opt.Arity == schema.ArityFlag:
			flags[name] = true
			flag.Bool()
		case opt.Arity == schema.ArityMulti:
			flag.PlaceHolder(strings.ToUpper(opt.Name)).Strings()
		case opt.Type == schema.TypeInt:
			flag.PlaceHolder(strings.ToUpper(opt.Name)).Int()
		default:
			flag.PlaceHolder(strings.ToUpper(opt.Name)).String()
		}
	}

	app.UsageFuncs(template.FuncMap{"FlagsToTwoColumns": flagRows(flags)})
	return app, nil
}

type cumulative interface {
	IsCumulative() bool
}

// flagRows formats flags for the two column listing. Schema flags take an
// optional true|false value and have no --no- form.
func flagRows(flags map[string]bool) func([]*kingpin.FlagModel) [][2]string {
	return func(models []*kingpin.FlagModel) [][2]string {
		haveShort := false
		for _, f := range models {
			if f.Short != 0 {
				haveShort = true
				break
			}
		}

		rows := [][2]string{}
		for _, f := range models {
			if f.Hidden {
				continue
			}
			rows = append(rows, [2]string{formatFlag(f, haveShort, flags[f.Name]), f.HelpWithEnvar()})
		}
		return rows
	}
}

func formatFlag(f *kingpin.FlagModel, haveShort, boolValue bool) string {
	var b strings.Builder
	switch {
	case f.Short != 0:
		fmt.Fprintf(&b, "-%c, --%s", f.Short, f.Name)
	case haveShort:
		fmt.Fprintf(&b, "    --%s", f.Name)
	default:
		fmt.Fprintf(&b, "--%s", f.Name)
	}

	switch {
	case boolValue:
		b.WriteString("[=true|false]")
	case !f.IsBoolFlag():
		fmt.Fprintf(&b, "=%s", f.FormatPlaceHolder())
	}
	if c, ok := f.Value.(cumulative); ok && c.IsCumulative() {
		b.WriteString(" ...")
	}
	return b.String()
}

func help(opt schema.Option) string {
	if opt.Help != "" {
		return opt.Help
	}
	return opt.Name
}
