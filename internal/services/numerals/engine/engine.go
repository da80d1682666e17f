// Package engine converts integers to and from historical numeral systems.
//
// Each system is served by a codec: a small value implementing the encode
// algorithm of its family and, for Roman, Egyptian and Greek, a decoder.
// Every successful conversion carries an ordered step trace meant for display.
package engine

import (
	"fmt"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
	"golang.org/x/text/unicode/norm"
)

// System identifiers. They match the registry ids.
const (
	SystemRoman      = "roman"
	SystemMayan      = "mayan"
	SystemChinese    = "chinese"
	SystemBabylonian = "babylonian"
	SystemYoruba     = "yoruba"
	SystemInuktitut  = "inuktitut"
	SystemEgyptian   = "egyptian"
	SystemGreek      = "greek"
)

// NotApplicable is the sentinel value of conversions that succeed without a
// representation.
const NotApplicable = "N/A"

const notImplementedStep = "Reverse conversion not yet implemented for this system. Try converting from Arabic to this system instead!"

var codecs = map[string]codec{
	SystemRoman:      romanCodec{},
	SystemMayan:      vigesimalCodec{},
	SystemChinese:    chineseCodec{},
	SystemBabylonian: sexagesimalCodec{},
	SystemYoruba:     yorubaCodec{},
	SystemInuktitut:  inuktitutCodec{},
	SystemEgyptian:   egyptianCodec,
	SystemGreek:      greekCodec,
}

// Direction selects encode (to-cultural) or decode (to-arabic).
type Direction string

const (
	ToCultural Direction = "to-cultural"
	ToArabic   Direction = "to-arabic"
)

// ParseDirection validates a direction. Blank defaults to ToCultural.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.TrimSpace(value)) {
	case "", ToCultural:
		return ToCultural, nil
	case ToArabic:
		return ToArabic, nil
	default:
		return "", errors.WithMetadata(
			errors.CodeInvalidDirection,
			fmt.Sprintf("Unknown conversion direction: %s", value),
			map[string]string{"Direction": value},
		)
	}
}

// Result is the uniform outcome of a conversion.
//
// Code is empty for plain successes, UNSUPPORTED_VALUE or NOT_IMPLEMENTED for
// sentinel successes, and the failure code otherwise.
type Result struct {
	Success  bool              `json:"success"`
	Value    string            `json:"result,omitempty"`
	Steps    []string          `json:"steps,omitempty"`
	Code     errors.Code       `json:"code,omitempty"`
	Message  string            `json:"error,omitempty"`
	Metadata map[string]string `json:"-"`
}

// Err returns the failure as a domain error, or nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return errors.WithMetadata(r.Code, r.Message, r.Metadata)
}

// Sentinel reports whether the result succeeded with the N/A placeholder.
func (r Result) Sentinel() bool {
	return r.Success && r.Code != ""
}

// Supports reports which directions systemID can convert.
func Supports(systemID string) (encode, decode bool) {
	c, ok := codecs[systemID]
	if !ok {
		return false, false
	}
	_, decode = c.(decoder)
	return true, decode
}

// Convert parses input and routes it to the codec of systemID. It never
// panics: a failing codec is reported as an INTERNAL result. Only codec ids
// are known here; app.Service resolves ids against its registry first.
func Convert(input, systemID string, direction Direction) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(errors.New(errors.CodeInternal, fmt.Sprintf("conversion failed: %v", r)))
		}
	}()

	if _, ok := codecs[systemID]; !ok {
		return failure(systemNotFound(systemID))
	}
	switch direction {
	case ToCultural:
		n, err := ParseNumber(input)
		if err != nil {
			return failure(err)
		}
		return Encode(n, systemID)
	case ToArabic:
		if strings.TrimSpace(input) == "" {
			return failure(errBlankInput())
		}
		return Decode(input, systemID)
	default:
		_, err := ParseDirection(string(direction))
		return failure(err)
	}
}

// Encode renders n, which must be within [0, MaxInput], in systemID.
func Encode(n int, systemID string) Result {
	c, ok := codecs[systemID]
	if !ok {
		return failure(systemNotFound(systemID))
	}
	if n < 0 || n > MaxInput {
		return failure(errors.New(errors.CodeInvalidNumber, invalidNumberMessage))
	}
	return success(c.encode(n))
}

// Decode parses a cultural rendering in systemID back to a decimal string.
// Systems without a decoder answer with the NOT_IMPLEMENTED sentinel.
func Decode(text, systemID string) Result {
	c, ok := codecs[systemID]
	if !ok {
		return failure(systemNotFound(systemID))
	}
	d, ok := c.(decoder)
	if !ok {
		return success(rendering{
			value: NotApplicable,
			steps: []string{notImplementedStep},
			code:  errors.CodeNotImplemented,
		})
	}
	normalized := strings.ToUpper(norm.NFC.String(strings.TrimSpace(text)))
	r, err := d.decode(normalized)
	if err != nil {
		return failure(err)
	}
	return success(r)
}

func success(r rendering) Result {
	return Result{Success: true, Value: r.value, Steps: r.steps, Code: r.code}
}

func failure(err error) Result {
	result := Result{Code: errors.CodeOf(err), Message: err.Error()}
	if domainErr, ok := err.(*errors.Error); ok {
		result.Metadata = domainErr.Metadata
	}
	return result
}

func systemNotFound(systemID string) error {
	return errors.WithMetadata(errors.CodeSystemNotFound, "System not found", map[string]string{"System": systemID})
}
