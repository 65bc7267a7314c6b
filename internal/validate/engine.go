package validate

import (
	"github.com/eugenenazirov/envargs/internal/schema"
)

// OptionRule checks the explicit value tokens of one option.
type OptionRule func(opt schema.Option, tokens []string) error

// RootRule checks relationships between options.
type RootRule func(r *schema.Result) error

type optionRule struct {
	id    schema.OptionID
	check OptionRule
}

// Engine holds rules in declaration order. Configure it with On and Root
// before use; Validate does not mutate it.
type Engine struct {
	option []optionRule
	root   []RootRule
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{}
}

// On registers rules for the option id.
func (e *Engine) On(id schema.OptionID, rules ...OptionRule) *Engine {
	for _, rule := range rules {
		e.option = append(e.option, optionRule{id: id, check: rule})
	}
	return e
}

// Root registers cross-option rules.
func (e *Engine) Root(rules ...RootRule) *Engine {
	e.root = append(e.root, rules...)
	return e
}

// Validate runs every rule and returns all failures. Option rules only see
// options that were explicitly given and parsed cleanly; root rules always run.
func (e *Engine) Validate(r *schema.Result) schema.Errors {
	var out schema.Errors

	parseErrs := r.Errors()
	for _, rule := range e.option {
		if !r.Has(rule.id) {
			continue
		}
		opt, ok := r.Schema().Option(rule.id)
		if !ok || len(parseErrs.For(opt.Name)) > 0 {
			continue
		}
		if err := rule.check(opt, r.Tokens(rule.id)); err != nil {
			out = append(out, schema.Error{Kind: schema.KindValidation, Option: opt.Name, Message: err.Error()})
		}
	}

	for _, rule := range e.root {
		if err := rule(r); err != nil {
			out = append(out, schema.Error{Kind: schema.KindValidation, Option: schema.Root, Message: err.Error()})
		}
	}

	return out
}

// Check validates r and bundles the outcome with the parse errors.
func (e *Engine) Check(r *schema.Result) Report {
	errs := r.Errors()
	errs = append(errs, e.Validate(r)...)
	return Report{result: r, errs: errs}
}

// Report is a parse result together with every parse and validation error.
type Report struct {
	result *schema.Result
	errs   schema.Errors
}

// Result returns the underlying parse result.
func (rep Report) Result() *schema.Result { return rep.result }

// Errors returns parse errors followed by validation errors.
func (rep Report) Errors() schema.Errors {
	return append(schema.Errors(nil), rep.errs...)
}

// OK reports whether the configuration can be built.
func (rep Report) OK() bool {
	return rep.result != nil && len(rep.errs) == 0
}
