package keyvault

import "errors"

// ErrInvalidName is returned when a vault name is not 3-20 characters.
var ErrInvalidName = errors.New("key vault name must be 3-20 characters")
