package config

import (
	"io/fs"

	"github.com/eugenenazirov/envargs/internal/validate"
)

// Rules returns the complex-app validator engine. Files are looked up under
// TestFilesDir in fsys.
func Rules(fsys fs.FS) *validate.Engine {
	return validate.New().
		On(Server, validate.Length(3, 20, "--server must be 3 - 20 characters [a-z][0-9]")).
		On(Files, validate.FilesExist(fsys, TestFilesDir)).
		On(Sleep, validate.IntAtLeast(0)).
		On(Duration, validate.IntAtLeast(0)).
		On(Timeout, validate.IntAtLeast(0)).
		On(MaxConcurrent, validate.IntAtLeast(0)).
		On(MaxErrors, validate.IntAtLeast(0)).
		On(Telemetry, validate.TokenCount(2, "--telemetry requires appName and appKey parameters")).
		Root(
			validate.RequiresTrue(RunLoop, Duration, "--run-loop must be true to use --duration"),
			validate.RequiresTrue(RunLoop, Random, "--run-loop must be true to use --random"),
		)
}
