package engine

import (
	"testing"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{input: "0", want: 0},
		{input: "42", want: 42},
		{input: "  42  ", want: 42},
		{input: "+7", want: 7},
		{input: "-0", want: 0},
		{input: "12abc", want: 12},
		{input: "3.7", want: 3},
		{input: "1e3", want: 1},
		{input: "007", want: 7},
		{input: "999999999", want: MaxInput},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.input)
		if err != nil {
			t.Fatalf("ParseNumber(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseNumber(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		message string
	}{
		{input: "", message: "Please enter a number to convert"},
		{input: "   ", message: "Please enter a number to convert"},
		{input: "abc", message: "Please enter a valid positive number"},
		{input: "-5", message: "Please enter a valid positive number"},
		{input: "-", message: "Please enter a valid positive number"},
		{input: ".5", message: "Please enter a valid positive number"},
		{input: "1000000000", message: "Numbers above 999,999,999 are not supported"},
	}
	for _, tt := range tests {
		_, err := ParseNumber(tt.input)
		if errors.CodeOf(err) != errors.CodeInvalidNumber {
			t.Fatalf("ParseNumber(%q) code = %q, want %q", tt.input, errors.CodeOf(err), errors.CodeInvalidNumber)
		}
		if err.Error() != tt.message {
			t.Fatalf("ParseNumber(%q) message = %q, want %q", tt.input, err.Error(), tt.message)
		}
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Direction{
		"":            ToCultural,
		"to-cultural": ToCultural,
		" to-arabic ": ToArabic,
	} {
		got, err := ParseDirection(input)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseDirection(%q) = %q, want %q", input, got, want)
		}
	}

	_, err := ParseDirection("sideways")
	if errors.CodeOf(err) != errors.CodeInvalidDirection {
		t.Fatalf("ParseDirection(sideways) code = %q", errors.CodeOf(err))
	}
}
