package keyvault

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/envargs/internal/config"
	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/schema"
	"github.com/eugenenazirov/envargs/internal/validate"
)

// Option identities of simple-app.
const (
	Name schema.OptionID = iota + 1
	AuthType
	DryRun
)

// AppName is the program name shown in usage.
const AppName = "simple-app"

const (
	EnvName     = "KEYVAULT_NAME"
	EnvAuthType = "AUTH_TYPE"
)

// Schema is the simple-app grammar.
var Schema = schema.MustNew(AppName, "A simple app",
	schema.Option{ID: Name, Name: "keyvault-name", Aliases: []string{"--keyvault-name", "-k"}, Arity: schema.AritySingle, Required: true, Help: "The name or URL of the Azure Keyvault"},
	schema.Option{ID: AuthType, Name: "auth-type", Aliases: []string{"--auth-type", "-a"}, Arity: schema.AritySingle, Default: []string{DefaultAuthType}, OptionalValue: true, Help: "Authentication type - MSI CLI VS"},
	schema.Option{ID: DryRun, Name: "dry-run", Aliases: []string{"--dry-run", "-d"}, Arity: schema.ArityFlag, Help: "Validates configuration"},
)

// Bindings maps environment variables to simple-app options. AUTH_TYPE falls
// back to MSI so the option is always present after merging.
var Bindings = []envmap.Binding{
	{Vars: []string{EnvName}, Aliases: []string{"--keyvault-name", "-k"}},
	{Vars: []string{EnvAuthType}, Aliases: []string{"--auth-type", "-a"}, Fallback: DefaultAuthType},
}

// Rules returns the simple-app validator engine.
func Rules() *validate.Engine {
	return validate.New().
		On(Name, validate.Tag(
			fmt.Sprintf("min=%d,max=%d,hostname_rfc1123", minNameLength, maxNameLength),
			"--keyvault-name must be 3-20 characters [a-z][0-9]",
		)).
		On(AuthType, validate.OneOf("--auth-type must be MSI CLI or VS", AuthTypes...))
}

// Config is the resolved simple-app configuration.
type Config struct {
	Name     string
	URL      string
	AuthType string
	DryRun   bool
}

// Build materializes a validated report.
func Build(rep validate.Report) (Config, error) {
	if !rep.OK() {
		return Config{}, fmt.Errorf("%w: build called with %d outstanding errors", config.ErrConfiguration, len(rep.Errors()))
	}
	r := rep.Result()

	name, _ := r.String(Name)
	u, err := URL(name)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", config.ErrConfiguration, err)
	}

	authType, _ := r.String(AuthType)
	dryRun, ok := r.Bool(DryRun)

	return Config{
		Name:     strings.TrimSpace(name),
		URL:      u,
		AuthType: strings.ToUpper(strings.TrimSpace(authType)),
		DryRun:   ok && dryRun,
	}, nil
}
