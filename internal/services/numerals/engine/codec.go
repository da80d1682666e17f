package engine

import (
	"fmt"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

// codec is the closed set of numeral algorithm families.
type codec interface {
	encode(n int) rendering
}

// decoder is implemented by codecs that parse cultural input.
type decoder interface {
	codec
	decode(text string) (rendering, error)
}

// rendering is a codec's output before it becomes a Result.
type rendering struct {
	value string
	steps []string
	code  errors.Code
}

// trace accumulates derivation steps.
type trace struct {
	steps []string
}

func newTrace(format string, args ...any) *trace {
	t := &trace{}
	t.addf(format, args...)
	return t
}

func (t *trace) addf(format string, args ...any) {
	t.steps = append(t.steps, fmt.Sprintf(format, args...))
}

func (t *trace) finish(value string) rendering {
	t.addf("Final result: %s", value)
	return rendering{value: value, steps: t.steps}
}

// unsupported ends the trace with the N/A sentinel.
func (t *trace) unsupported(reason string) rendering {
	t.addf("%s", reason)
	r := t.finish(NotApplicable)
	r.code = errors.CodeUnsupportedValue
	return r
}

// symbolValue pairs a glyph with its value in a descending symbol table.
type symbolValue struct {
	value  int
	symbol string
}
