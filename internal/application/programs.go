package application

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/eugenenazirov/envargs/internal/config"
	"github.com/eugenenazirov/envargs/internal/keyvault"
	"github.com/eugenenazirov/envargs/internal/validate"
)

// Complex is the API test front-end. Test files are resolved in fsys.
func Complex(fsys fs.FS) Program {
	return Program{
		Schema:   config.Schema,
		Bindings: config.Bindings,
		Rules:    config.Rules(fsys),
		Launch: func(rep validate.Report, stdout io.Writer) error {
			cfg, err := config.Build(rep)
			if err != nil {
				return err
			}
			if cfg.DryRun {
				return config.WriteDryRun(stdout, cfg)
			}
			return runComplex(stdout, cfg)
		},
	}
}

// Simple is the Key Vault front-end.
func Simple() Program {
	return Program{
		Schema:   keyvault.Schema,
		Bindings: keyvault.Bindings,
		Rules:    keyvault.Rules(),
		Launch: func(rep validate.Report, stdout io.Writer) error {
			cfg, err := keyvault.Build(rep)
			if err != nil {
				return err
			}
			if cfg.DryRun {
				return writeSimple(stdout, cfg, "dry run", "")
			}
			return writeSimple(stdout, cfg, "Web server starting ...", "Exiting ...")
		},
	}
}

func runComplex(w io.Writer, _ config.Config) error {
	_, err := fmt.Fprint(w, "Starting app ...\nShutting down ...\n")
	return err
}

func writeSimple(w io.Writer, cfg keyvault.Config, header, footer string) error {
	if _, err := fmt.Fprintf(w, "%s\n\tKeyvault   %s\n\tAuth Type  %s\n", header, cfg.URL, cfg.AuthType); err != nil {
		return err
	}
	if footer == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}
