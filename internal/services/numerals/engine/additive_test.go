package engine

import (
	"strconv"
	"testing"
)

func TestEgyptianEncode(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		5:       "𓏺𓏺𓏺𓏺𓏺",
		23:      "𓎆𓎆 𓏺𓏺𓏺",
		42:      "𓎆𓎆𓎆𓎆 𓏺𓏺",
		1234:    "𓆼 𓍢𓍢 𓎆𓎆𓎆 𓏺𓏺𓏺𓏺",
		1000000: "𓁨",
	}
	for n, want := range tests {
		if got := egyptianCodec.encode(n).value; got != want {
			t.Fatalf("encode(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestEgyptianEncodeSteps(t *testing.T) {
	t.Parallel()

	steps := egyptianCodec.encode(42).steps
	if !containsStep(steps, `4 × 10 = 40 (add 4 "𓎆" symbol(s))`) {
		t.Fatalf("steps = %q", steps)
	}
}

func TestGreekEncode(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		5:     "Π",
		11:    "ΔΙ",
		42:    "ΔΔΔΔΙΙ",
		365:   "ΗΗΗ𐅃ΔΠ",
		1984:  "Χ𐅄ΗΗΗΗ𐅃ΔΔΔΙΙΙΙ",
		15000: "Μ𐅅",
	}
	for n, want := range tests {
		if got := greekCodec.encode(n).value; got != want {
			t.Fatalf("encode(%d) = %q, want %q", n, got, want)
		}
	}
	if !containsStep(greekCodec.encode(5).steps, `1 × 5 = 5 (add 1 "Π")`) {
		t.Fatal("greek step format changed")
	}
}

func TestAdditiveRoundTrip(t *testing.T) {
	t.Parallel()

	var inputs []int
	for n := 1; n <= 20000; n++ {
		inputs = append(inputs, n)
	}
	for n := 20000; n <= 9_999_999; n += 9973 {
		inputs = append(inputs, n)
	}
	inputs = append(inputs, 9_999_999)

	for _, system := range []string{SystemEgyptian, SystemGreek} {
		for _, n := range inputs {
			encoded := Encode(n, system)
			decoded := Decode(encoded.Value, system)
			if decoded.Value != strconv.Itoa(n) {
				t.Fatalf("%s decode(encode(%d)) = %q", system, n, decoded.Value)
			}
		}
	}
}

func TestAdditiveDecodeIsLenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		system string
		input  string
		want   string
	}{
		{system: SystemEgyptian, input: "𓎆 x 𓏺 ?", want: "11"},
		{system: SystemEgyptian, input: "hello", want: "0"},
		{system: SystemGreek, input: "ΔΔ abc Ι", want: "21"},
		{system: SystemGreek, input: "δι", want: "11"},
	}
	for _, tt := range tests {
		result := Decode(tt.input, tt.system)
		if !result.Success || result.Value != tt.want {
			t.Fatalf("Decode(%q, %s) = %+v, want %s", tt.input, tt.system, result, tt.want)
		}
	}
}

func TestAdditiveDecodeSteps(t *testing.T) {
	t.Parallel()

	result := Decode("𓎆𓏺", SystemEgyptian)
	want := []string{
		"Parsing Egyptian hieroglyphs: 𓎆𓏺",
		`Symbol "𓎆" = 10, running total = 10`,
		`Symbol "𓏺" = 1, running total = 11`,
		"Final result: 11",
	}
	if len(result.Steps) != len(want) {
		t.Fatalf("steps = %q", result.Steps)
	}
	for i := range want {
		if result.Steps[i] != want[i] {
			t.Fatalf("step %d = %q, want %q", i, result.Steps[i], want[i])
		}
	}
}
