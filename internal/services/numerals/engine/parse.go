package engine

import (
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

// MaxInput is the largest value accepted for encoding.
const MaxInput = 999_999_999

const invalidNumberMessage = "Please enter a valid positive number"

// ParseNumber reads the leading integer of input, ignoring trailing text, so
// "12abc" is 12 and "3.7" is 3. Input without leading digits, negative
// values, and values above MaxInput are INVALID_NUMBER.
func ParseNumber(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, errBlankInput()
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > MaxInput {
			return 0, errors.WithMetadata(errors.CodeInvalidNumber,
				"Numbers above 999,999,999 are not supported",
				map[string]string{"Max": "999999999"})
		}
	}
	if digits == 0 || (negative && n != 0) {
		return 0, errors.New(errors.CodeInvalidNumber, invalidNumberMessage)
	}
	return n, nil
}

func errBlankInput() error {
	return errors.New(errors.CodeInvalidNumber, "Please enter a number to convert")
}
