package keyvault

import (
	"errors"
	"slices"
	"testing"

	"github.com/eugenenazirov/envargs/internal/config"
	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/merge"
)

func TestBuildFromEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		env  map[string]string
		want Config
	}{
		{
			name: "EnvOnlyWithFallbackAuth",
			env:  map[string]string{EnvName: "myvault"},
			want: Config{Name: "myvault", URL: "https://myvault.vault.azure.net/", AuthType: "MSI"},
		},
		{
			name: "EnvAuthLowercase",
			env:  map[string]string{EnvName: "myvault", EnvAuthType: "cli"},
			want: Config{Name: "myvault", URL: "https://myvault.vault.azure.net/", AuthType: "CLI"},
		},
		{
			name: "ExplicitWins",
			raw:  []string{"-k", "other", "-a", "vs", "-d"},
			env:  map[string]string{EnvName: "myvault", EnvAuthType: "cli"},
			want: Config{Name: "other", URL: "https://other.vault.azure.net/", AuthType: "VS", DryRun: true},
		},
		{
			name: "BareAuthTypeUsesDefault",
			raw:  []string{"-k", "myvault", "-a"},
			env:  map[string]string{EnvAuthType: "cli"},
			want: Config{Name: "myvault", URL: "https://myvault.vault.azure.net/", AuthType: "MSI"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := merge.Merge(tc.raw, Bindings, envmap.FromMap(tc.env))
			rep := Rules().Check(Schema.Parse(args))
			if !rep.OK() {
				t.Fatalf("unexpected errors: %v", rep.Errors())
			}
			got, err := Build(rep)
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "MissingName", args: []string{"-a", "MSI"}, want: []string{"Option '--keyvault-name' is required."}},
		{name: "ShortName", args: []string{"-k", "kv"}, want: []string{"--keyvault-name must be 3-20 characters [a-z][0-9]"}},
		{name: "BadCharset", args: []string{"-k", "my_vault!"}, want: []string{"--keyvault-name must be 3-20 characters [a-z][0-9]"}},
		{name: "BadAuth", args: []string{"-k", "myvault", "-a", "token"}, want: []string{"--auth-type must be MSI CLI or VS"}},
		{name: "Both", args: []string{"-k", "x", "-a", ""}, want: []string{
			"--keyvault-name must be 3-20 characters [a-z][0-9]",
			"--auth-type must be MSI CLI or VS",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rules().Check(Schema.Parse(tc.args)).Errors().Messages()
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuildRejectsReportWithErrors(t *testing.T) {
	t.Parallel()

	rep := Rules().Check(Schema.Parse(nil))
	if _, err := Build(rep); !errors.Is(err, config.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
