// Package keyvault holds the Key Vault specific string helpers used by
// simple-app: name and auth-type checks and vault URL canonicalization.
package keyvault

import (
	"slices"
	"strings"
)

const (
	minNameLength = 3
	maxNameLength = 20

	vaultSuffix = ".vault.azure.net"
)

// AuthTypes are the accepted authentication types, upper case.
var AuthTypes = []string{"MSI", "CLI", "VS"}

// DefaultAuthType is used when no auth type is given.
const DefaultAuthType = "MSI"

// ValidName reports whether name is 3-20 characters once trimmed.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= minNameLength && len(name) <= maxNameLength
}

// ValidAuthType reports whether authType is one of AuthTypes, ignoring case.
func ValidAuthType(authType string) bool {
	authType = strings.TrimSpace(authType)
	return authType != "" && slices.Contains(AuthTypes, strings.ToUpper(authType))
}

// URL turns a vault name into its https URL with a trailing slash. Names that
// already carry the scheme or the vault domain are completed, not duplicated.
func URL(name string) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName
	}

	u := strings.TrimSpace(name)
	if !hasPrefixFold(u, "https://") {
		u = "https://" + u
	}
	trimmed := strings.TrimSuffix(u, "/")
	if !hasSuffixFold(trimmed, vaultSuffix) {
		trimmed += vaultSuffix
	}
	return trimmed + "/", nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
