package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Direction values posted by the converter form.
const (
	DirectionToCultural = "to-cultural"
	DirectionToArabic   = "to-arabic"
)

// ResultID is the element replaced by HTMX conversions.
const ResultID = "conversion-result"

// SystemOption is one choice of the system selector.
type SystemOption struct {
	ID       string
	Name     string
	Selected bool
}

// ConversionView is a rendered engine result.
type ConversionView struct {
	Success  bool
	Sentinel bool
	Value    string
	Steps    []string
	Code     string
	Error    string
	// Places holds the digits of positional systems, most significant first.
	Places []int
}

// ConverterView is the converter page state.
type ConverterView struct {
	Systems   []SystemOption
	Direction string
	Input     string
	Result    *ConversionView
}

// ConverterPage renders the conversion form and the last result.
func ConverterPage(view ConverterView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		direction := view.Direction
		if direction != DirectionToArabic {
			direction = DirectionToCultural
		}
		placeholder := T(loc, "web.converter.placeholder_to_cultural")
		if direction == DirectionToArabic {
			placeholder = T(loc, "web.converter.placeholder_to_arabic")
		}

		h := newHTML(w)
		h.open("section", "class", "converter")
		h.elem("h1", T(loc, "web.converter.title"))
		h.open("form", "class", "converter-form", "method", "post", "action", routepath.ConverterPrefix,
			"hx-post", routepath.ConverterPrefix, "hx-target", "#"+ResultID, "hx-select", "#"+ResultID, "hx-swap", "outerHTML")

		h.elem("label", T(loc, "web.converter.system_label"), "for", "converter-system")
		h.open("select", "id", "converter-system", "name", "system")
		for _, option := range view.Systems {
			attrs := append([]string{"value", option.ID}, when(option.Selected, "selected", "")...)
			h.elem("option", option.Name, attrs...)
		}
		h.close("select")

		h.open("fieldset", "class", "direction")
		h.elem("legend", T(loc, "web.converter.direction_label"))
		for _, choice := range []struct{ value, key string }{
			{DirectionToCultural, "web.converter.direction_to_cultural"},
			{DirectionToArabic, "web.converter.direction_to_arabic"},
		} {
			h.open("label")
			attrs := append([]string{"type", "radio", "name", "direction", "value", choice.value},
				when(choice.value == direction, "checked", "")...)
			h.open("input", attrs...)
			h.text(" " + T(loc, choice.key))
			h.close("label")
		}
		h.close("fieldset")

		h.elem("label", T(loc, "web.converter.input_label"), "for", "converter-input")
		h.open("input", "type", "text", "id", "converter-input", "name", "input", "class", "converter-input",
			"value", view.Input, "placeholder", placeholder, "autocomplete", "off")
		h.elem("button", T(loc, "web.converter.submit"), "type", "submit")
		h.close("form")
		if h.err != nil {
			return h.err
		}
		if err := ConversionResult(view.Result, loc).Render(ctx, w); err != nil {
			return err
		}
		h.close("section")
		return h.err
	})
}

// ConversionResult renders the result panel; a nil result renders an empty
// placeholder for later swaps.
func ConversionResult(result *ConversionView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		if result == nil {
			h.open("div", "id", ResultID, "class", "conversion-result").close("div")
			return h.err
		}
		state := "success"
		switch {
		case !result.Success:
			state = "error"
		case result.Sentinel:
			state = "sentinel"
		}
		h.open("div", "id", ResultID, "class", classes("conversion-result", state), "data-code", result.Code)
		if !result.Success {
			h.elem("p", result.Error, "class", "error-message", "role", "alert")
			h.close("div")
			return h.err
		}
		h.elem("h2", T(loc, "web.converter.result"))
		h.elem("pre", result.Value, "class", "numeral-output")
		if result.Sentinel {
			h.elem("p", T(loc, "web.converter.sentinel"), "class", "sentinel-note")
		}
		if len(result.Places) > 1 {
			h.open("ol", "class", "place-values")
			for _, digit := range result.Places {
				h.elem("li", strconv.Itoa(digit))
			}
			h.close("ol")
		}
		if len(result.Steps) > 0 {
			h.elem("h3", T(loc, "web.converter.steps"))
			h.open("ol", "class", "steps")
			for _, step := range result.Steps {
				h.elem("li", step, "class", "step")
			}
			h.close("ol")
		}
		h.close("div")
		return h.err
	})
}
