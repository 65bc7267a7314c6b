package envmap

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Snapshot is a read-only view of the process environment.
type Snapshot struct {
	vars map[string]string
}

// Capture reads the live process environment exactly once.
func Capture() Snapshot {
	return Snapshot{vars: env.ToMap(os.Environ())}
}

// FromMap builds a Snapshot from a copy of vars.
func FromMap(vars map[string]string) Snapshot {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Snapshot{vars: cp}
}

// Get returns the value of name, or "" when unset.
func (s Snapshot) Get(name string) string {
	return s.vars[name]
}

// Map returns a copy of the underlying variables.
func (s Snapshot) Map() map[string]string {
	cp := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		cp[k] = v
	}
	return cp
}
