package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIDIsVersion4(t *testing.T) {
	t.Parallel()

	value, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("parse id %q: %v", value, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("version = %d, want 4", parsed.Version())
	}
	if !Valid(value) {
		t.Fatalf("Valid(%q) = false", value)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for range 50 {
		value, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[value] {
			t.Fatalf("duplicate id %q", value)
		}
		seen[value] = true
	}
}

func TestValidRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, value := range []string{
		"",
		"not-a-uuid",
		"urn:uuid:123e4567-e89b-42d3-a456-426614174000",
		"123e4567-e89b-12d3-a456-426614174000",
		"../../etc/passwd",
	} {
		if Valid(value) {
			t.Fatalf("Valid(%q) = true, want false", value)
		}
	}
}
