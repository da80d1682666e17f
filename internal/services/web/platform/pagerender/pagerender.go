// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/numerals.space/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	ActiveNav  string
	Fragment   templ.Component
}

// FragmentFunc builds the page fragment once the request localizer is known.
type FragmentFunc func(loc webi18n.Localizer) ModulePage

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Write resolves the request language, builds the page and writes it. HTMX
// requests receive only the main element.
func Write(w http.ResponseWriter, r *http.Request, build FragmentFunc) error {
	if w == nil || build == nil {
		return nil
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	return WriteModulePage(w, r, loc, lang, build(loc))
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		shell := webtemplates.Page{
			Title:     page.Title,
			Lang:      lang,
			Loc:       loc,
			ActiveNav: page.ActiveNav,
		}
		if r != nil && r.URL != nil {
			shell.CurrentPath = r.URL.Path
			shell.CurrentQuery = r.URL.RawQuery
		}
		if err := webtemplates.AppLayout(shell).Render(ctx, &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
