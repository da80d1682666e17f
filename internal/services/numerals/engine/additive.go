package engine

import (
	"strconv"
	"strings"
)

// additiveCodec is the pure-additive family shared by Egyptian hieroglyphs
// and Greek Attic numerals. Decoding is lenient: unknown symbols are skipped.
type additiveCodec struct {
	name       string
	parseLabel string
	zeroReason string
	separator  string
	unitNoun   string
	table      []symbolValue
	values     map[rune]int
}

var egyptianCodec = newAdditiveCodec(additiveCodec{
	name:       "Egyptian hieroglyphic",
	parseLabel: "Egyptian hieroglyphs",
	zeroReason: "Ancient Egyptians did not have a symbol for zero",
	separator:  " ",
	unitNoun:   " symbol(s)",
	table: []symbolValue{
		{1_000_000, "𓁨"},
		{100_000, "𓆐"},
		{10_000, "𓂭"},
		{1_000, "𓆼"},
		{100, "𓍢"},
		{10, "𓎆"},
		{1, "𓏺"},
	},
})

var greekCodec = newAdditiveCodec(additiveCodec{
	name:       "Greek (Attic)",
	parseLabel: "Greek (Attic) numerals",
	zeroReason: "Ancient Greeks did not have a symbol for zero in the Attic system",
	table: []symbolValue{
		{10_000, "Μ"},
		{5_000, "𐅅"},
		{1_000, "Χ"},
		{500, "𐅄"},
		{100, "Η"},
		{50, "𐅃"},
		{10, "Δ"},
		{5, "Π"},
		{1, "Ι"},
	},
})

func newAdditiveCodec(c additiveCodec) additiveCodec {
	c.values = make(map[rune]int, len(c.table))
	for _, entry := range c.table {
		c.values[[]rune(entry.symbol)[0]] = entry.value
	}
	return c
}

func (c additiveCodec) encode(n int) rendering {
	t := newTrace("Converting %d to %s numerals:", n, c.name)
	if n == 0 {
		return t.unsupported(c.zeroReason)
	}

	var groups []string
	remaining := n
	for _, entry := range c.table {
		count := remaining / entry.value
		if count == 0 {
			continue
		}
		groups = append(groups, strings.Repeat(entry.symbol, count))
		t.addf("%d × %d = %d (add %d %q%s)", count, entry.value, count*entry.value, count, entry.symbol, c.unitNoun)
		remaining -= count * entry.value
	}
	return t.finish(strings.Join(groups, c.separator))
}

func (c additiveCodec) decode(text string) (rendering, error) {
	t := newTrace("Parsing %s: %s", c.parseLabel, text)
	total := 0
	for _, char := range text {
		value, ok := c.values[char]
		if !ok {
			continue
		}
		total += value
		t.addf("Symbol %q = %d, running total = %d", string(char), value, total)
	}
	return t.finish(strconv.Itoa(total)), nil
}
