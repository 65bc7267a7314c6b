package main

import (
	"fmt"
	"os"

	"github.com/eugenenazirov/envargs/internal/application"
	"github.com/eugenenazirov/envargs/internal/envmap"
	"github.com/eugenenazirov/envargs/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], envmap.Capture()))
}

func run(args []string, snap envmap.Snapshot) int {
	settings, err := application.LoadSettings(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		return 1
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(application.Complex(os.DirFS(".")), logger)
	return app.Execute(args, snap)
}
