package engine

import (
	"strconv"
	"strings"
)

// chineseMax is the largest value the 万 unit can write without 亿.
const chineseMax = 99_999

const chineseZero = "零"

var (
	chineseDigits = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUnits  = []string{"", "十", "百", "千", "万"}
)

// chineseCodec is the multiplicative-additive family.
type chineseCodec struct{}

func (chineseCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Chinese numerals:", n)
	if n == 0 {
		t.addf("Zero is 零 (líng)")
		return t.finish(chineseZero)
	}
	if n > chineseMax {
		return t.unsupported("Chinese numerals here only go up to 99,999 (the 万 unit)")
	}

	decimal := strconv.Itoa(n)
	var result string
	for i, ch := range decimal {
		digit := int(ch - '0')
		position := len(decimal) - i - 1

		if digit == 0 {
			if result != "" && !strings.HasSuffix(result, chineseZero) {
				result += chineseZero
				t.addf("Position %d: 0 - add 零 as placeholder", position)
			}
			continue
		}

		unit := chineseUnits[position]
		if n >= 10 && n < 20 && position == 1 {
			result += unit
			t.addf("Position %d: %d - special case for teens, add %s only", position, digit, unit)
			continue
		}
		multiplier := unit
		if multiplier == "" {
			multiplier = "1"
		}
		result += chineseDigits[digit] + unit
		t.addf("Position %d: %d - add %s%s (%d × %s)", position, digit, chineseDigits[digit], unit, digit, multiplier)
	}

	return t.finish(strings.TrimRight(result, chineseZero))
}
