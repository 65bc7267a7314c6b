// Package merge combines explicit process arguments with environment-derived
// arguments. Explicit arguments always win: environment tokens for an option
// are appended only when none of that option's aliases is already present.
package merge

import (
	"strings"

	"github.com/eugenenazirov/envargs/internal/envmap"
)

// Merge returns raw followed by the environment-derived tokens of every
// binding not already satisfied by raw. raw is never modified.
func Merge(raw []string, bindings []envmap.Binding, snap envmap.Snapshot) []string {
	out, _ := MergeCount(raw, bindings, snap)
	return out
}

// MergeCount is Merge that also reports how many bindings were appended.
func MergeCount(raw []string, bindings []envmap.Binding, snap envmap.Snapshot) ([]string, int) {
	out := make([]string, len(raw), len(raw)+2*len(bindings))
	copy(out, raw)

	appended := 0
	for _, d := range envmap.Derive(bindings, snap) {
		if Present(raw, d.Aliases...) {
			continue
		}
		out = append(out, d.Tokens...)
		appended++
	}
	return out, appended
}

// Present reports whether any of aliases occurs in args, either as an exact
// token or in the "alias=value" form.
func Present(args []string, aliases ...string) bool {
	for _, arg := range args {
		for _, alias := range aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			if arg == alias || strings.HasPrefix(arg, alias+"=") {
				return true
			}
		}
	}
	return false
}
