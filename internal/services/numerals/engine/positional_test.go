package engine

import (
	"strings"
	"testing"
)

func TestMayanEncode(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:    "⊗",
		5:    "—",
		7:    "— ••",
		10:   "——",
		13:   "—— •••",
		19:   "——— ••••",
		20:   "•\n⊗",
		42:   "••\n••",
		400:  "•\n⊗\n⊗",
		7999: "——— ••••\n——— ••••\n——— ••••",
	}
	for n, want := range tests {
		if got := (vigesimalCodec{}).encode(n).value; got != want {
			t.Fatalf("encode(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestMayanNarratesZeroPositions(t *testing.T) {
	t.Parallel()

	steps := (vigesimalCodec{}).encode(400).steps
	joined := strings.Join(steps, "\n")
	for _, want := range []string{
		"Position 0: 400 mod 20 = 0, remaining: 20",
		"Position 1 (value 0): shell ⊗ holds the empty place",
		"Position 2 (value 1): 0 bar(s) + 1 dot(s) = •",
		"Read top to bottom, most significant position first",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("steps missing %q:\n%s", want, joined)
		}
	}
}

func TestMayanZeroSteps(t *testing.T) {
	t.Parallel()

	steps := (vigesimalCodec{}).encode(0).steps
	if !containsStep(steps, "Zero is represented by the shell symbol ⊗") {
		t.Fatalf("steps = %q", steps)
	}
}

func TestBabylonianEncode(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:    "𒑊",
		1:    "𒐕",
		10:   "𒌋",
		42:   "𒌋𒌋𒌋𒌋𒐕𒐕",
		60:   "𒐕 | 𒑊",
		125:  "𒐕𒐕 | 𒐕𒐕𒐕𒐕𒐕",
		3600: "𒐕 | 𒑊 | 𒑊",
	}
	for n, want := range tests {
		if got := (sexagesimalCodec{}).encode(n).value; got != want {
			t.Fatalf("encode(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestBabylonianSteps(t *testing.T) {
	t.Parallel()

	steps := (sexagesimalCodec{}).encode(125).steps
	for _, want := range []string{
		"Converting 125 to Babylonian (base-60) numerals:",
		"Position 0: 125 mod 60 = 5, remaining: 2",
		"Position 1 (value 2): 0 chevron(s) + 2 wedge(s)",
		"Position 0 (value 5): 0 chevron(s) + 5 wedge(s)",
		"Final result: 𒐕𒐕 | 𒐕𒐕𒐕𒐕𒐕",
	} {
		if !containsStep(steps, want) {
			t.Fatalf("steps %q missing %q", steps, want)
		}
	}
}

func TestPositionalReconstruction(t *testing.T) {
	t.Parallel()

	var inputs []int
	for n := 0; n <= 5000; n++ {
		inputs = append(inputs, n)
	}
	inputs = append(inputs, 7999, 8000, 216000, 1_000_000, MaxInput)

	for _, system := range []string{SystemMayan, SystemBabylonian} {
		for _, n := range inputs {
			value := Encode(n, system).Value
			got, ok := reconstruct(value, system)
			if !ok {
				t.Fatalf("reconstruct(%q, %s) not readable", value, system)
			}
			if got != n {
				t.Fatalf("reconstruct(encode(%d), %s) = %d", n, system, got)
			}
		}
	}
}

func TestPlaceValuesRejectsForeignInput(t *testing.T) {
	t.Parallel()

	if _, ok := PlaceValues("XIV", SystemMayan); ok {
		t.Fatal("expected unreadable mayan input")
	}
	if _, ok := PlaceValues("XIV", SystemRoman); ok {
		t.Fatal("roman is not positional")
	}
	digits, ok := PlaceValues("𒐕𒐕 | 𒐕𒐕𒐕𒐕𒐕", SystemBabylonian)
	if !ok || len(digits) != 2 || digits[0] != 2 || digits[1] != 5 {
		t.Fatalf("PlaceValues = %v, %v", digits, ok)
	}
}

// reconstruct sums digit × base^position for a positional rendering.
func reconstruct(value, systemID string) (int, bool) {
	base := map[string]int{SystemMayan: 20, SystemBabylonian: 60}[systemID]
	digits, ok := PlaceValues(value, systemID)
	if !ok || base == 0 {
		return 0, false
	}
	total := 0
	for _, digit := range digits {
		total = total*base + digit
	}
	return total, true
}
