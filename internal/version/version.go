// Package version reports the program version.
package version

import "runtime/debug"

// Semver is set at build time with
// -ldflags "-X github.com/eugenenazirov/envargs/internal/version.Semver=1.2.3".
var Semver = ""

const devVersion = "0.0.0-dev"

var readBuildInfo = debug.ReadBuildInfo

// String returns the human readable version line.
func String() string {
	return "Version: " + Resolve()
}

// Resolve returns the injected version, the module version from build info,
// or a development placeholder.
func Resolve() string {
	if Semver != "" {
		return Semver
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
