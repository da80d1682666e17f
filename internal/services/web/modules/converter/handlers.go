package converter

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors/i18n"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/engine"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	apperrors "github.com/louisbranch/numerals.space/internal/services/web/platform/errors"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/numerals.space/internal/services/web/templates"
)

type handlers struct {
	service *app.Service
}

func newHandlers(service *app.Service) handlers {
	return handlers{service: service}
}

// form is the converter input as posted or linked.
type form struct {
	systemID  string
	direction string
	input     string
}

func readForm(values func(string) string) form {
	return form{
		systemID:  strings.TrimSpace(values("system")),
		direction: strings.TrimSpace(values("direction")),
		input:     values("input"),
	}
}

// handleIndex renders the form. A linked input is converted right away.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	f := readForm(r.URL.Query().Get)
	h.render(w, r, f, strings.TrimSpace(f.input) != "")
}

func (h handlers) handleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid converter form"))
		return
	}
	h.render(w, r, readForm(r.PostForm.Get), true)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, f form, convert bool) {
	systems := h.service.Systems(httpx.RequestContext(r), registry.Query{})
	if f.systemID == "" && len(systems) > 0 {
		f.systemID = systems[0].ID
	}

	var result *engine.Result
	if convert {
		converted := h.service.Convert(httpx.RequestContext(r), app.ConvertRequest{
			Input:     f.input,
			SystemID:  f.systemID,
			Direction: f.direction,
		})
		result = &converted
	}

	if convert && httpx.IsHTMXRequest(r) {
		loc, lang := webi18n.ResolveLocalizer(w, r)
		var buf bytes.Buffer
		if err := webtemplates.ConversionResult(conversionView(result, f.systemID, lang), loc).Render(r.Context(), &buf); err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
		return
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := webtemplates.ConverterView{
		Systems:   systemOptions(systems, f.systemID),
		Direction: f.direction,
		Input:     f.input,
		Result:    conversionView(result, f.systemID, lang),
	}
	page := pagerender.ModulePage{
		Title:     webtemplates.T(loc, "web.converter.title"),
		ActiveNav: webtemplates.NavConverter,
		Fragment:  webtemplates.ConverterPage(view, loc),
	}
	if err := pagerender.WriteModulePage(w, r, loc, lang, page); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func systemOptions(systems []registry.System, selected string) []webtemplates.SystemOption {
	options := make([]webtemplates.SystemOption, 0, len(systems))
	for _, system := range systems {
		options = append(options, webtemplates.SystemOption{
			ID:       system.ID,
			Name:     system.Name,
			Selected: system.ID == selected,
		})
	}
	return options
}

// conversionView maps a result for display, localizing failure messages.
func conversionView(result *engine.Result, systemID, lang string) *webtemplates.ConversionView {
	if result == nil {
		return nil
	}
	view := &webtemplates.ConversionView{
		Success:  result.Success,
		Sentinel: result.Sentinel(),
		Value:    result.Value,
		Steps:    result.Steps,
		Code:     string(result.Code),
	}
	if !result.Success {
		view.Error = i18n.Localize(lang, string(result.Code), result.Metadata, result.Message)
		return view
	}
	if !view.Sentinel {
		if places, ok := engine.PlaceValues(result.Value, systemID); ok {
			view.Places = places
		}
	}
	return view
}
