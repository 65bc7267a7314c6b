package application

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/merge"
	"github.com/eugenenazirov/envargs/internal/schema"
	"github.com/eugenenazirov/envargs/internal/usage"
	"github.com/eugenenazirov/envargs/internal/validate"
	"github.com/eugenenazirov/envargs/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
)

var helpTokens = []string{"--help", "-h", "-?"}

// Program describes one command-line program. Launch receives a report that
// is known to be free of errors.
type Program struct {
	Schema   *schema.Schema
	Bindings []envmap.Binding
	Rules    *validate.Engine
	Launch   func(rep validate.Report, stdout io.Writer) error
}

// App runs a Program against process inputs.
type App struct {
	program Program
	logger  *zap.Logger
	stdout  io.Writer
	stderr  io.Writer
	version func() string
}

// Option configures an App.
type Option func(*App)

// WithOutput overrides stdout and stderr, primarily for tests.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithVersion overrides the version line printed for --version.
func WithVersion(v string) Option {
	return func(a *App) {
		a.version = func() string { return v }
	}
}

// New creates an App for program.
func New(program Program, logger *zap.Logger, opts ...Option) *App {
	a := &App{
		program: program,
		logger:  logger,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		version: version.String,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the pipeline once and returns the process exit code. raw and
// snap are the only inputs; the live environment is never consulted.
func (a *App) Execute(raw []string, snap envmap.Snapshot) int {
	if slices.Contains(raw, "--version") {
		fmt.Fprintln(a.stdout, a.version())
		return exitOK
	}
	if slices.ContainsFunc(raw, func(arg string) bool { return slices.Contains(helpTokens, arg) }) {
		if err := usage.Render(a.stdout, a.program.Schema, a.version()); err != nil {
			a.logger.Error("render usage", zap.Error(err))
			return exitError
		}
		return exitOK
	}

	args, appended := merge.MergeCount(raw, a.program.Bindings, snap)
	a.logger.Debug("merged environment into arguments",
		zap.Int("explicit", len(raw)),
		zap.Int("appended", appended),
	)

	rep := a.program.Rules.Check(a.program.Schema.Parse(args))
	if !rep.OK() {
		errs := rep.Errors()
		a.logger.Warn("configuration rejected", zap.Int("errors", len(errs)))
		a.report(errs)
		return exitError
	}

	if err := a.program.Launch(rep, a.stdout); err != nil {
		a.logger.Error("launch failed", zap.Error(err))
		fmt.Fprintln(a.stderr, err)
		return exitError
	}
	return exitOK
}

func (a *App) report(errs schema.Errors) {
	for _, err := range errs {
		a.logger.Debug("configuration error",
			zap.String("kind", err.Kind.String()),
			zap.String("option", err.Option),
			zap.String("message", err.Message),
		)
		fmt.Fprintln(a.stderr, err.Message)
	}
	fmt.Fprintln(a.stderr)
	if err := usage.Render(a.stderr, a.program.Schema, a.version()); err != nil {
		a.logger.Error("render usage", zap.Error(err))
	}
}
