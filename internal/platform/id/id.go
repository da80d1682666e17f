// Package id generates opaque identifiers for practice sessions.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random version 4 UUID in canonical form.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return value.String(), nil
}

// Valid reports whether value is a canonical version 4 UUID.
func Valid(value string) bool {
	value = strings.TrimSpace(value)
	if len(value) != 36 {
		return false
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Version() == 4 && parsed.Variant() == uuid.RFC4122
}
