package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

// romanMax is the largest value standard notation can write.
const romanMax = 3999

var romanTable = []symbolValue{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

var romanValues = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

// romanCodec is the additive-subtractive family.
type romanCodec struct{}

func (romanCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Roman numerals:", n)
	if n == 0 {
		return t.unsupported("Roman numerals do not have a symbol for zero")
	}
	if n > romanMax {
		return t.unsupported("Standard Roman numerals only go up to 3999")
	}

	var b strings.Builder
	remaining := n
	for _, entry := range romanTable {
		for remaining >= entry.value {
			b.WriteString(entry.symbol)
			t.addf("%d - %d = %d (add %q)", remaining, entry.value, remaining-entry.value, entry.symbol)
			remaining -= entry.value
		}
	}
	return t.finish(b.String())
}

// decode scans right to left: a symbol smaller than the one after it
// subtracts. Well-formedness is not validated.
func (romanCodec) decode(text string) (rendering, error) {
	t := newTrace("Parsing Roman numeral: %s", text)
	runes := []rune(text)
	total, prev := 0, 0
	for i := len(runes) - 1; i >= 0; i-- {
		char := runes[i]
		value, ok := romanValues[char]
		if !ok {
			return rendering{}, errors.WithMetadata(
				errors.CodeInvalidCharacter,
				fmt.Sprintf("Invalid Roman numeral character: %c", char),
				map[string]string{"Char": string(char), "System": "Roman"},
			)
		}
		if value < prev {
			total -= value
			t.addf("%q (%d) before larger value: subtract %d, total = %d", string(char), value, value, total)
		} else {
			total += value
			t.addf("%q (%d): add %d, total = %d", string(char), value, value, total)
		}
		prev = value
	}
	return t.finish(strconv.Itoa(total)), nil
}
