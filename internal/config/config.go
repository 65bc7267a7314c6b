package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eugenenazirov/envargs/internal/schema"
	"github.com/eugenenazirov/envargs/internal/validate"
)

const hostedDomainPattern = "https://%s.azurewebsites.net"

var structChecker = validator.New(validator.WithRequiredStructEnabled())

// Config is the fully resolved complex-app configuration.
type Config struct {
	Server                string   `yaml:"server" validate:"required,url"`
	Files                 []string `yaml:"files"`
	RunLoop               bool     `yaml:"run_loop"`
	SleepMs               int      `yaml:"sleep_ms"`
	Duration              int      `yaml:"duration"`
	Random                bool     `yaml:"random"`
	Verbose               bool     `yaml:"verbose"`
	Timeout               int      `yaml:"timeout"`
	MaxConcurrentRequests int      `yaml:"max_concurrent"`
	MaxErrors             int      `yaml:"max_errors"`
	TelemetryName         string   `yaml:"telemetry_name,omitempty"`
	TelemetryKey          string   `yaml:"telemetry_key,omitempty"`
	DryRun                bool     `yaml:"dry_run"`
}

// Build materializes a validated report. Fields whose default depends on
// another field are resolved after that field: run-loop first, then verbose
// and sleep.
func Build(rep validate.Report) (Config, error) {
	if !rep.OK() {
		return Config{}, fmt.Errorf("%w: build called with %d outstanding errors", ErrConfiguration, len(rep.Errors()))
	}
	r := rep.Result()

	server, _ := r.String(Server)
	cfg := Config{
		Server: NormalizeServer(server),
		Files:  r.Strings(Files),
	}
	if len(cfg.Files) == 0 {
		cfg.Files = []string{DefaultFile}
	}

	if tel := r.Tokens(Telemetry); len(tel) == 2 {
		cfg.TelemetryName = tel[0]
		cfg.TelemetryKey = tel[1]
	}

	cfg.RunLoop = boolOr(r, RunLoop, false)
	cfg.DryRun = boolOr(r, DryRun, false)
	cfg.Random = boolOr(r, Random, false)
	cfg.Verbose = boolOr(r, Verbose, !cfg.RunLoop)

	sleep := 0
	if cfg.RunLoop {
		sleep = loopSleepMs
	}
	cfg.SleepMs = intOr(r, Sleep, sleep)
	cfg.Duration = intOr(r, Duration, defaultDuration)
	cfg.Timeout = intOr(r, Timeout, defaultTimeout)
	cfg.MaxErrors = intOr(r, MaxErrors, defaultMaxErrors)
	cfg.MaxConcurrentRequests = intOr(r, MaxConcurrent, defaultMaxConcurrent)

	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Check verifies the built Config is usable. Server values starting with
// "http" are kept verbatim, so the normalized server must still parse as an
// absolute URL.
func (c Config) Check() error {
	if err := structChecker.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

// NormalizeServer expands a server value into a URL. Values starting with
// "http" are kept, loopback hosts get http://, anything else is treated as a
// short app name on the hosted domain.
func NormalizeServer(server string) string {
	server = strings.TrimSpace(server)
	if hasPrefixFold(server, "http") {
		return server
	}
	if hasPrefixFold(server, "localhost") || hasPrefixFold(server, "127.0.0.1") {
		return "http://" + server
	}
	return fmt.Sprintf(hostedDomainPattern, server)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func boolOr(r *schema.Result, id schema.OptionID, fallback bool) bool {
	if v, ok := r.Bool(id); ok {
		return v
	}
	return fallback
}

func intOr(r *schema.Result, id schema.OptionID, fallback int) int {
	if v, ok := r.Int(id); ok {
		return v
	}
	return fallback
}
