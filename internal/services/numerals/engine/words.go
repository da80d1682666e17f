package engine

import "fmt"

var yorubaWords = map[int]string{
	0: "òdo", 1: "ọkan", 2: "eji", 3: "ẹta", 4: "ẹrin", 5: "arun",
	6: "ẹfa", 7: "eje", 8: "ẹjọ", 9: "ẹsan", 10: "ẹwa",
}

// yorubaCodec is the subtractive-vigesimal family. Beyond 19 it expresses
// the value against the nearest multiple of twenty, which approximates the
// spoken forms rather than reconstructing them: a surplus renders as
// "ogún + d" whatever the multiple, a deficit as "d from M".
type yorubaCodec struct{}

func (yorubaCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Yoruba numerals:", n)
	switch {
	case n <= 10:
		word := yorubaWords[n]
		t.addf("Direct word: %s", word)
		return t.finish(word)
	case n <= 14:
		t.addf("%d is in the 11-14 range: formed by addition to 10", n)
		return t.finish("ọkanla (11-14 pattern)")
	case n <= 19:
		subtract := 20 - n
		word := yorubaWords[subtract] + "dinlogun"
		t.addf("%d = 20 - %d, so %q (%d from 20)", n, subtract, word, subtract)
		return t.finish(word)
	}

	nearest := (n + 10) / 20 * 20
	diff := n - nearest
	var result string
	switch {
	case diff == 0:
		result = fmt.Sprintf("%d × ogún (20)", nearest/20)
	case diff > 0:
		// The surplus is always counted from a single ogún.
		result = fmt.Sprintf("ogún + %d", diff)
	default:
		result = fmt.Sprintf("%d from %d", -diff, nearest)
	}
	t.addf("%d ≈ %s (Yoruba uses complex subtraction patterns)", n, result)
	return t.finish(result)
}

var inuktitutWords = map[int]string{
	1: "atausiq", 2: "marluk", 3: "pingasut", 4: "sisamat", 5: "tallimat",
	10: "qulit", 20: "inuit",
}

// inuktitutCodec is the body-counting family: hands, toes, then whole persons.
type inuktitutCodec struct{}

func (inuktitutCodec) encode(n int) rendering {
	t := newTrace("Converting %d to Inuktitut (body-counting) numerals:", n)
	if n == 0 {
		return t.unsupported("Body counting starts at atausiq (one); there is no word for zero")
	}
	if word, ok := inuktitutWords[n]; ok {
		t.addf("Direct word: %s", word)
		return t.finish(word)
	}

	switch {
	case n < 10:
		t.addf("%d = 5 (one hand) + %d (second hand)", n, n-5)
		return t.finish(fmt.Sprintf("tallimat + %d", n-5))
	case n < 20:
		t.addf("%d = 10 (both hands) + %d (toes)", n, n-10)
		return t.finish(fmt.Sprintf("qulit + %d", n-10))
	}

	persons, remainder := n/20, n%20
	if remainder == 0 {
		t.addf("%d = %d complete persons (%d × 20)", n, persons, persons)
		return t.finish(fmt.Sprintf("%d × inuit (person)", persons))
	}
	t.addf("%d = %d person(s) + %d", n, persons, remainder)
	return t.finish(fmt.Sprintf("%d inuit + %d", persons, remainder))
}
