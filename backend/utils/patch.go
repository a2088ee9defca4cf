package utils

import (
	"errors"
	"fmt"
)

// ErrInvalidUpdateField marks a patch payload carrying a key outside the
// entity's mutable-field allow-list.
var ErrInvalidUpdateField = errors.New("invalid update fields")

// FilterUpdates enforces an allow-list of mutable fields for a patch
// payload. allowed maps JSON field names to database column names. The
// whole update is rejected when any key falls outside the allow-list;
// known-valid keys in the same payload are not partially applied. An
// empty payload is a valid no-op update.
func FilterUpdates(updates map[string]interface{}, allowed map[string]string) (map[string]interface{}, error) {
	filtered := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		column, ok := allowed[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not updatable", ErrInvalidUpdateField, key)
		}
		filtered[column] = value
	}
	return filtered, nil
}
