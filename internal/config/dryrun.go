package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteDryRun prints the "dry run" banner followed by v as a YAML document.
func WriteDryRun(w io.Writer, v any) error {
	if _, err := fmt.Fprintln(w, "dry run"); err != nil {
		return fmt.Errorf("write dry run header: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode dry run: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush dry run: %w", err)
	}
	return nil
}
