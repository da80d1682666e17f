package engine

import "strings"

const (
	mayanZero = "⊗"
	mayanBar  = "—"
	mayanDot  = "•"

	babylonianZero    = "𒑊"
	babylonianChevron = "𒌋"
	babylonianWedge   = "𒐕"
)

// placeDigits splits n into base-b digits, most significant first, narrating
// each division.
func placeDigits(n, base int, t *trace) []int {
	var digits []int
	for position := 0; n > 0; position++ {
		digit := n % base
		t.addf("Position %d: %d mod %d = %d, remaining: %d", position, n, base, digit, n/base)
		digits = append([]int{digit}, digits...)
		n /= base
	}
	return digits
}

// vigesimalCodec is the Mayan base-20 family: bars of five over dots,
// positions stacked top to bottom.
type vigesimalCodec struct{}

func (vigesimalCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Mayan (base-20) numerals:", n)
	if n == 0 {
		t.addf("Zero is represented by the shell symbol %s", mayanZero)
		return t.finish(mayanZero)
	}

	digits := placeDigits(n, 20, t)
	lines := make([]string, len(digits))
	for i, digit := range digits {
		position := len(digits) - i - 1
		if digit == 0 {
			lines[i] = mayanZero
			t.addf("Position %d (value 0): shell %s holds the empty place", position, mayanZero)
			continue
		}
		lines[i] = mayanDigit(digit)
		t.addf("Position %d (value %d): %d bar(s) + %d dot(s) = %s", position, digit, digit/5, digit%5, lines[i])
	}
	if len(lines) > 1 {
		t.addf("Read top to bottom, most significant position first")
	}
	return t.finish(strings.Join(lines, "\n"))
}

func mayanDigit(digit int) string {
	return strings.TrimSpace(strings.Repeat(mayanBar, digit/5) + " " + strings.Repeat(mayanDot, digit%5))
}

// sexagesimalCodec is the Babylonian base-60 family: chevrons of ten then
// wedges, positions separated by a pipe.
type sexagesimalCodec struct{}

func (sexagesimalCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Babylonian (base-60) numerals:", n)
	if n == 0 {
		t.addf("Zero is represented by %s", babylonianZero)
		return t.finish(babylonianZero)
	}

	digits := placeDigits(n, 60, t)
	places := make([]string, len(digits))
	for i, digit := range digits {
		position := len(digits) - i - 1
		if digit == 0 {
			places[i] = babylonianZero
			t.addf("Position %d (value 0): placeholder %s", position, babylonianZero)
			continue
		}
		places[i] = strings.Repeat(babylonianChevron, digit/10) + strings.Repeat(babylonianWedge, digit%10)
		t.addf("Position %d (value %d): %d chevron(s) + %d wedge(s)", position, digit, digit/10, digit%10)
	}
	if len(places) > 1 {
		t.addf("Positions are separated by |, most significant first")
	}
	return t.finish(strings.Join(places, " | "))
}

// PlaceValues reads back the digits of a Mayan or Babylonian rendering, most
// significant first. It reports false for other systems or unknown glyphs.
func PlaceValues(value, systemID string) ([]int, bool) {
	var places []string
	switch systemID {
	case SystemMayan:
		places = strings.Split(value, "\n")
	case SystemBabylonian:
		places = strings.Split(value, " | ")
	default:
		return nil, false
	}

	digits := make([]int, 0, len(places))
	for _, place := range places {
		digit := 0
		for _, r := range strings.ReplaceAll(place, " ", "") {
			switch string(r) {
			case mayanZero, babylonianZero:
			case mayanBar:
				digit += 5
			case mayanDot, babylonianWedge:
				digit++
			case babylonianChevron:
				digit += 10
			default:
				return nil, false
			}
		}
		digits = append(digits, digit)
	}
	return digits, true
}
