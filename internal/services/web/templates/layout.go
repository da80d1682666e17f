package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Navigation ids for the active header link.
const (
	NavLibrary   = "library"
	NavConverter = "converter"
	NavPractice  = "practice"
)

// MainID is the element swapped by HTMX navigation.
const MainID = "main"

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Page carries the shell state of a full-page render.
type Page struct {
	Title        string
	Lang         string
	Loc          Localizer
	ActiveNav    string
	CurrentPath  string
	CurrentQuery string
}

type navLink struct {
	id   string
	href string
	key  string
}

var navLinks = []navLink{
	{id: NavLibrary, href: routepath.LibraryPrefix, key: "web.nav.library"},
	{id: NavConverter, href: routepath.ConverterPrefix, key: "web.nav.converter"},
	{id: NavPractice, href: routepath.PracticePrefix, key: "web.nav.practice"},
}

// AppLayout renders the document shell around the context children.
func AppLayout(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := T(page.Loc, "core.app_name")
		title := appName
		if page.Title != "" {
			title = page.Title + " · " + appName
		}

		h := newHTML(w)
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", page.Lang)
		h.open("head")
		h.raw(`<meta charset="utf-8">`, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.elem("title", title)
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"app.css")
		h.open("script", "src", htmxScriptURL, "defer", "").close("script")
		h.close("head")
		h.open("body", "hx-boost", "true", "hx-target", "#"+MainID, "hx-select", "#"+MainID, "hx-swap", "outerHTML")

		h.open("header", "class", "app-header")
		h.open("a", "class", "brand", "href", routepath.LibraryPrefix).text(appName).close("a")
		h.elem("p", T(page.Loc, "core.tagline"), "class", "tagline")
		h.open("nav", "class", "app-nav")
		for _, link := range navLinks {
			attrs := []string{"href", link.href, "class", classes("nav-link", activeClass(link.id == page.ActiveNav))}
			attrs = append(attrs, when(link.id == page.ActiveNav, "aria-current", "page")...)
			h.elem("a", T(page.Loc, link.key), attrs...)
		}
		h.close("nav")
		h.open("nav", "class", "language-switcher", "aria-label", T(page.Loc, "web.nav.language"))
		for _, option := range webi18n.LanguageOptions(page.Loc, page.Lang) {
			href := webi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, option.Tag)
			h.elem("a", option.Label, "href", href, "hreflang", option.Tag, "hx-boost", "false",
				"class", classes("language-option", activeClass(option.Active)))
		}
		h.close("nav")
		h.close("header")
		if h.err != nil {
			return h.err
		}

		if err := MainContent().Render(ctx, w); err != nil {
			return err
		}

		h.close("body").close("html")
		return h.err
	})
}

// MainContent renders the swappable main element around the context children.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("main", "id", MainID, "class", "app-main")
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		h.close("main")
		return h.err
	})
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}
