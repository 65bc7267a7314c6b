package application

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/logging"
)

// Settings are process-level knobs that are not program options.
type Settings struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"error"`
}

// LoadSettings decodes Settings from snap.
func LoadSettings(snap envmap.Snapshot) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: snap.Map()}); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if s.LogLevel == "" {
		s.LogLevel = logging.DefaultLevel
	}
	return s, nil
}
