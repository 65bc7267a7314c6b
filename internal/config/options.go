package config

import (
	"strconv"

	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/schema"
)

// Option identities of complex-app.
const (
	Server schema.OptionID = iota + 1
	Files
	RunLoop
	Random
	Sleep
	Duration
	Timeout
	MaxConcurrent
	MaxErrors
	Telemetry
	Verbose
	DryRun
)

const (
	// AppName is the program name shown in usage.
	AppName = "complex-app"

	// DefaultFile is tested when no files are given.
	DefaultFile = "baseline.json"
	// TestFilesDir is where --files entries must exist.
	TestFilesDir = "testFiles"

	defaultDuration      = 0
	defaultTimeout       = 30
	defaultMaxConcurrent = 100
	defaultMaxErrors     = 10
	loopSleepMs          = 1000
)

// Environment variables read by complex-app.
const (
	EnvServer        = "SERVER"
	EnvSleep         = "SLEEP"
	EnvVerbose       = "VERBOSE"
	EnvRunLoop       = "RUN_LOOP"
	EnvRandom        = "RANDOM"
	EnvDuration      = "DURATION"
	EnvTimeout       = "TIMEOUT"
	EnvMaxConcurrent = "MAX_CONCURRENT"
	EnvMaxErrors     = "MAX_ERRORS"
	EnvFiles         = "FILES"
	EnvTelemetryName = "TELEMETRY_NAME"
	EnvTelemetryKey  = "TELEMETRY_KEY"
)

// Schema is the complex-app grammar.
var Schema = schema.MustNew(AppName, "Validate API responses",
	schema.Option{ID: Server, Name: "server", Aliases: []string{"--server", "-s"}, Arity: schema.AritySingle, Required: true, Help: "Server to test"},
	schema.Option{ID: Files, Name: "files", Aliases: []string{"--files", "-f"}, Arity: schema.ArityMulti, Default: []string{DefaultFile}, Help: "List of files to test"},
	schema.Option{ID: Sleep, Name: "sleep", Aliases: []string{"--sleep", "-l"}, Arity: schema.AritySingle, Type: schema.TypeInt, Help: "Sleep (ms) between each request"},
	schema.Option{ID: Verbose, Name: "verbose", Aliases: []string{"--verbose", "-v"}, Arity: schema.ArityFlag, Help: "Display verbose results"},
	schema.Option{ID: RunLoop, Name: "run-loop", Aliases: []string{"--run-loop", "-r"}, Arity: schema.ArityFlag, Default: []string{"false"}, Help: "Run test in an infinite loop"},
	schema.Option{ID: Random, Name: "random", Aliases: []string{"--random"}, Arity: schema.ArityFlag, Default: []string{"false"}, Help: "Run requests randomly (requires --run-loop)"},
	schema.Option{ID: Duration, Name: "duration", Aliases: []string{"--duration"}, Arity: schema.AritySingle, Type: schema.TypeInt, Default: []string{strconv.Itoa(defaultDuration)}, Help: "Test duration (seconds) (requires --run-loop)"},
	schema.Option{ID: Timeout, Name: "timeout", Aliases: []string{"--timeout", "-t"}, Arity: schema.AritySingle, Type: schema.TypeInt, Default: []string{strconv.Itoa(defaultTimeout)}, Help: "Request timeout (seconds)"},
	schema.Option{ID: MaxConcurrent, Name: "max-concurrent", Aliases: []string{"--max-concurrent"}, Arity: schema.AritySingle, Type: schema.TypeInt, Default: []string{strconv.Itoa(defaultMaxConcurrent)}, Help: "Max concurrent requests"},
	schema.Option{ID: MaxErrors, Name: "max-errors", Aliases: []string{"--max-errors"}, Arity: schema.AritySingle, Type: schema.TypeInt, Default: []string{strconv.Itoa(defaultMaxErrors)}, Help: "Max validation errors"},
	schema.Option{ID: Telemetry, Name: "telemetry", Aliases: []string{"--telemetry"}, Arity: schema.ArityMulti, Help: "App Insights name and key"},
	schema.Option{ID: DryRun, Name: "dry-run", Aliases: []string{"--dry-run", "-d"}, Arity: schema.ArityFlag, Help: "Validates configuration"},
)

// Bindings maps environment variables to complex-app options, in the order
// their tokens are appended.
var Bindings = []envmap.Binding{
	{Vars: []string{EnvServer}, Aliases: []string{"--server", "-s"}},
	{Vars: []string{EnvSleep}, Aliases: []string{"--sleep", "-l"}},
	{Vars: []string{EnvVerbose}, Aliases: []string{"--verbose", "-v"}},
	{Vars: []string{EnvRunLoop}, Aliases: []string{"--run-loop", "-r"}},
	{Vars: []string{EnvRandom}, Aliases: []string{"--random"}},
	{Vars: []string{EnvDuration}, Aliases: []string{"--duration"}},
	{Vars: []string{EnvTimeout}, Aliases: []string{"--timeout", "-t"}},
	{Vars: []string{EnvMaxConcurrent}, Aliases: []string{"--max-concurrent"}},
	{Vars: []string{EnvMaxErrors}, Aliases: []string{"--max-errors"}},
	{Vars: []string{EnvFiles}, Aliases: []string{"--files", "-f"}, Kind: envmap.List},
	// the name always precedes the key, whichever is set
	{Vars: []string{EnvTelemetryName, EnvTelemetryKey}, Aliases: []string{"--telemetry"}, Kind: envmap.Pair},
}
