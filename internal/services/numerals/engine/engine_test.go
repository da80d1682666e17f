package engine

import (
	"strings"
	"testing"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

var allSystems = []string{
	SystemRoman, SystemMayan, SystemChinese, SystemBabylonian,
	SystemYoruba, SystemInuktitut, SystemEgyptian, SystemGreek,
}

func TestConvertRejectsInvalidNumbers(t *testing.T) {
	t.Parallel()

	for _, system := range allSystems {
		for _, input := range []string{"-5", "abc"} {
			result := Convert(input, system, ToCultural)
			if result.Success {
				t.Fatalf("Convert(%q, %s) succeeded with %q", input, system, result.Value)
			}
			if result.Code != errors.CodeInvalidNumber {
				t.Fatalf("Convert(%q, %s) code = %q, want INVALID_NUMBER", input, system, result.Code)
			}
			if result.Message == "" {
				t.Fatalf("Convert(%q, %s) has no message", input, system)
			}
		}
	}
}

func TestConvertRomanFive(t *testing.T) {
	t.Parallel()

	result := Convert("5", SystemRoman, ToCultural)
	if !result.Success || result.Value != "V" {
		t.Fatalf("result = %+v, want V", result)
	}
	if last := result.Steps[len(result.Steps)-1]; last != "Final result: V" {
		t.Fatalf("last step = %q", last)
	}
	if result.Code != "" || result.Err() != nil {
		t.Fatalf("plain success carries code %q", result.Code)
	}
}

func TestConvertSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		system string
		reason string
	}{
		{input: "0", system: SystemRoman, reason: "Roman numerals do not have a symbol for zero"},
		{input: "4000", system: SystemRoman, reason: "Standard Roman numerals only go up to 3999"},
		{input: "0", system: SystemEgyptian, reason: "Ancient Egyptians did not have a symbol for zero"},
		{input: "0", system: SystemGreek, reason: "Ancient Greeks did not have a symbol for zero in the Attic system"},
		{input: "0", system: SystemInuktitut, reason: "Body counting starts at atausiq (one); there is no word for zero"},
		{input: "100000", system: SystemChinese, reason: "Chinese numerals here only go up to 99,999 (the 万 unit)"},
	}
	for _, tt := range tests {
		result := Convert(tt.input, tt.system, ToCultural)
		if !result.Success {
			t.Fatalf("Convert(%q, %s) failed: %+v", tt.input, tt.system, result)
		}
		if result.Value != NotApplicable || result.Code != errors.CodeUnsupportedValue {
			t.Fatalf("Convert(%q, %s) = %q/%q, want N/A sentinel", tt.input, tt.system, result.Value, result.Code)
		}
		if !result.Sentinel() {
			t.Fatalf("Convert(%q, %s) is not reported as sentinel", tt.input, tt.system)
		}
		if !containsStep(result.Steps, tt.reason) {
			t.Fatalf("Convert(%q, %s) steps %q missing %q", tt.input, tt.system, result.Steps, tt.reason)
		}
	}
}

func TestConvertDecodeRoman(t *testing.T) {
	t.Parallel()

	result := Convert("MCMXCIV", SystemRoman, ToArabic)
	if !result.Success || result.Value != "1994" {
		t.Fatalf("result = %+v, want 1994", result)
	}
	lower := Convert(" mcmxciv ", SystemRoman, ToArabic)
	if lower.Value != "1994" {
		t.Fatalf("lowercase decode = %q, want 1994", lower.Value)
	}
}

func TestConvertDecodeInvalidRomanCharacter(t *testing.T) {
	t.Parallel()

	result := Convert("MCMXCIZ", SystemRoman, ToArabic)
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Code != errors.CodeInvalidCharacter {
		t.Fatalf("code = %q, want INVALID_CHARACTER", result.Code)
	}
	if result.Message != "Invalid Roman numeral character: Z" {
		t.Fatalf("message = %q", result.Message)
	}
	if result.Metadata["Char"] != "Z" {
		t.Fatalf("metadata = %v", result.Metadata)
	}
	if got := errors.CodeOf(result.Err()); got != errors.CodeInvalidCharacter {
		t.Fatalf("Err() code = %q", got)
	}
}

func TestConvertEgyptianFortyTwo(t *testing.T) {
	t.Parallel()

	result := Convert("42", SystemEgyptian, ToCultural)
	if result.Value != "𓎆𓎆𓎆𓎆 𓏺𓏺" {
		t.Fatalf("result = %q", result.Value)
	}
}

func TestConvertUnknownSystem(t *testing.T) {
	t.Parallel()

	result := Convert("5", "klingon", ToCultural)
	if result.Success || result.Code != errors.CodeSystemNotFound || result.Message != "System not found" {
		t.Fatalf("result = %+v", result)
	}
}

func TestConvertUnknownDirection(t *testing.T) {
	t.Parallel()

	result := Convert("5", SystemRoman, Direction("sideways"))
	if result.Success || result.Code != errors.CodeInvalidDirection {
		t.Fatalf("result = %+v", result)
	}
}

func TestConvertBlankDecodeInput(t *testing.T) {
	t.Parallel()

	result := Convert("  ", SystemRoman, ToArabic)
	if result.Success || result.Code != errors.CodeInvalidNumber {
		t.Fatalf("result = %+v", result)
	}
}

func TestConvertDecodeNotImplemented(t *testing.T) {
	t.Parallel()

	for _, system := range []string{SystemMayan, SystemChinese, SystemBabylonian, SystemYoruba, SystemInuktitut} {
		result := Convert("anything", system, ToArabic)
		if !result.Success || result.Value != NotApplicable || result.Code != errors.CodeNotImplemented {
			t.Fatalf("%s decode = %+v, want NOT_IMPLEMENTED sentinel", system, result)
		}
		if len(result.Steps) != 1 || !strings.HasPrefix(result.Steps[0], "Reverse conversion not yet implemented") {
			t.Fatalf("%s decode steps = %q", system, result.Steps)
		}
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	decoders := map[string]bool{SystemRoman: true, SystemEgyptian: true, SystemGreek: true}
	for _, system := range allSystems {
		encode, decode := Supports(system)
		if !encode {
			t.Fatalf("Supports(%s) encode = false", system)
		}
		if decode != decoders[system] {
			t.Fatalf("Supports(%s) decode = %v", system, decode)
		}
	}
	if encode, decode := Supports("klingon"); encode || decode {
		t.Fatal("unknown system should support nothing")
	}
}

func TestEveryEncodingEndsWithFinalResult(t *testing.T) {
	t.Parallel()

	inputs := []int{0, 1, 4, 5, 9, 10, 11, 14, 15, 19, 20, 21, 30, 35, 40, 42, 59, 60, 99, 100, 400, 1994, 3999, 4000, 7200, 99999, 123456}
	for _, system := range allSystems {
		for _, n := range inputs {
			result := Encode(n, system)
			if !result.Success {
				t.Fatalf("Encode(%d, %s) failed: %+v", n, system, result)
			}
			if len(result.Steps) == 0 {
				t.Fatalf("Encode(%d, %s) produced no steps", n, system)
			}
			want := "Final result: " + result.Value
			if last := result.Steps[len(result.Steps)-1]; last != want {
				t.Fatalf("Encode(%d, %s) last step = %q, want %q", n, system, last, want)
			}
		}
	}
}

type panicCodec struct{}

func (panicCodec) encode(int) rendering { panic("boom") }

func TestConvertRecoversPanics(t *testing.T) {
	codecs["exploding"] = panicCodec{}
	defer delete(codecs, "exploding")

	result := Convert("5", "exploding", ToCultural)
	if result.Success || result.Code != errors.CodeInternal {
		t.Fatalf("result = %+v, want INTERNAL failure", result)
	}
	if !strings.Contains(result.Message, "boom") {
		t.Fatalf("message = %q", result.Message)
	}
}

func containsStep(steps []string, want string) bool {
	for _, step := range steps {
		if step == want {
			return true
		}
	}
	return false
}
