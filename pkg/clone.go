// Package pkg is a package that provides utilities for gotraps.
package pkg

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
)

// Clone returns a deep copy of value by round-tripping it through gob.
//
// Unlike an assignment or a top-level copy, the result shares no backing
// storage with the input: nested slices, maps and pointed-to values are all
// duplicated. The type must be encodable by encoding/gob (no channels,
// functions, or unexported-only structs).
func Clone[T any](value T) (T, error) {
	var out T

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		slog.Error("failed to encode value for deep copy", "error", err)
		return out, fmt.Errorf("failed to encode value: %w", err)
	}

	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		slog.Error("failed to decode value for deep copy", "error", err)
		return out, fmt.Errorf("failed to decode value: %w", err)
	}

	return out, nil
}
