package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// SystemCard is one entry of the library grid.
type SystemCard struct {
	ID          string
	Name        string
	Culture     string
	Base        int
	Type        string
	Description string
	DetailURL   string
}

// BaseOption is one choice of the base selector.
type BaseOption struct {
	Value    string
	Label    string
	Selected bool
}

// LibraryView is the library page state.
type LibraryView struct {
	Search  string
	Bases   []BaseOption
	Systems []SystemCard
}

// LibraryPage renders the search form and the system grid.
func LibraryPage(view LibraryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("section", "class", "library")
		h.elem("h1", T(loc, "web.library.title"))

		h.open("form", "class", "library-filters", "method", "get", "action", routepath.LibraryPrefix, "role", "search")
		h.elem("label", T(loc, "web.library.search_label"), "for", "library-search")
		h.open("input", "type", "search", "id", "library-search", "name", "q", "value", view.Search,
			"placeholder", T(loc, "web.library.search_placeholder"))
		h.elem("label", T(loc, "web.library.base_label"), "for", "library-base")
		h.open("select", "id", "library-base", "name", "base")
		for _, option := range view.Bases {
			attrs := append([]string{"value", option.Value}, when(option.Selected, "selected", "")...)
			h.elem("option", option.Label, attrs...)
		}
		h.close("select")
		h.elem("button", T(loc, "web.library.filter_submit"), "type", "submit")
		h.close("form")

		if len(view.Systems) == 0 {
			h.elem("p", T(loc, "web.library.empty"), "class", "empty-state")
		} else {
			h.open("div", "class", "system-grid")
			for _, card := range view.Systems {
				h.open("article", "class", "system-card", "data-system-id", card.ID)
				h.elem("h2", card.Name)
				h.elem("p", card.Culture, "class", "system-culture")
				h.open("p", "class", "system-meta")
				h.elem("span", T(loc, "web.library.base_value", card.Base), "class", "badge")
				h.elem("span", card.Type, "class", "badge")
				h.close("p")
				h.elem("p", card.Description, "class", "system-description")
				h.elem("a", T(loc, "web.library.view_details"), "href", card.DetailURL, "class", "card-link")
				h.close("article")
			}
			h.close("div")
		}
		h.close("section")
		return h.err
	})
}

// SymbolView is one glyph of a system.
type SymbolView struct {
	Glyph string
	Value int
}

// ExampleView is one worked example of a system.
type ExampleView struct {
	Arabic      int
	Cultural    string
	Explanation string
}

// SystemDetailView is the detail page of one system.
type SystemDetailView struct {
	ID           string
	Name         string
	Culture      string
	Base         int
	BaseName     string
	Type         string
	Description  string
	History      string
	Rules        []string
	Symbols      []SymbolView
	Examples     []ExampleView
	ConverterURL string
}

// SystemDetailPage renders rules, symbols and examples of one system.
func SystemDetailPage(view SystemDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("article", "class", "system-detail", "data-system-id", view.ID)
		h.elem("a", T(loc, "web.library.back"), "href", routepath.LibraryPrefix, "class", "back-link")
		h.elem("h1", view.Name)
		h.open("dl", "class", "system-facts")
		h.elem("dt", T(loc, "web.library.culture")).elem("dd", view.Culture)
		base := T(loc, "web.library.base_value", view.Base)
		if view.BaseName != "" {
			base += " (" + view.BaseName + ")"
		}
		h.elem("dt", T(loc, "web.library.base_label")).elem("dd", base)
		h.elem("dt", T(loc, "web.library.type")).elem("dd", view.Type)
		h.close("dl")
		h.elem("p", view.Description, "class", "system-description")

		h.elem("h2", T(loc, "web.library.history"))
		h.elem("p", view.History)

		if len(view.Rules) > 0 {
			h.elem("h2", T(loc, "web.library.rules"))
			h.open("ul", "class", "rules")
			for _, rule := range view.Rules {
				h.elem("li", rule)
			}
			h.close("ul")
		}

		if len(view.Symbols) > 0 {
			h.elem("h2", T(loc, "web.library.symbols"))
			h.open("div", "class", "symbol-grid")
			for _, symbol := range view.Symbols {
				h.open("div", "class", "symbol")
				h.elem("span", symbol.Glyph, "class", "symbol-glyph")
				h.elem("span", strconv.Itoa(symbol.Value), "class", "symbol-value")
				h.close("div")
			}
			h.close("div")
		}

		if len(view.Examples) > 0 {
			h.elem("h2", T(loc, "web.library.examples"))
			h.open("ul", "class", "examples")
			for _, example := range view.Examples {
				h.open("li", "class", "example")
				h.elem("span", strconv.Itoa(example.Arabic), "class", "example-arabic")
				h.elem("pre", example.Cultural, "class", "numeral-output")
				h.elem("p", example.Explanation, "class", "example-explanation")
				h.close("li")
			}
			h.close("ul")
		}

		h.elem("a", T(loc, "web.library.try_converter"), "href", view.ConverterURL, "class", "button")
		h.close("article")
		return h.err
	})
}
