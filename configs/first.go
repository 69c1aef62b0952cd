package configs

import (
	"errors"
)

// First decodes the value at path from the first file defining it, or returns the zero value.
// Load and decode errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
