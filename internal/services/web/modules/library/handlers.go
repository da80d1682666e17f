package library

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/weberror"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/numerals.space/internal/services/web/templates"
)

type handlers struct {
	service *app.Service
}

func newHandlers(service *app.Service) handlers {
	return handlers{service: service}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := registry.Query{
		Base:   strings.TrimSpace(r.URL.Query().Get("base")),
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	}
	systems := h.service.Systems(httpx.RequestContext(r), query)
	bases := h.service.Bases()

	if err := pagerender.Write(w, r, func(loc webi18n.Localizer) pagerender.ModulePage {
		view := webtemplates.LibraryView{
			Search:  query.Search,
			Bases:   baseOptions(bases, query.Base, loc),
			Systems: systemCards(systems),
		}
		return pagerender.ModulePage{
			Title:     webtemplates.T(loc, "web.library.title"),
			ActiveNav: webtemplates.NavLibrary,
			Fragment:  webtemplates.LibraryPage(view, loc),
		}
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (h handlers) handleSystem(w http.ResponseWriter, r *http.Request) {
	system, err := h.service.System(httpx.RequestContext(r), r.PathValue("systemID"))
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if err := pagerender.Write(w, r, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:     system.Name,
			ActiveNav: webtemplates.NavLibrary,
			Fragment:  webtemplates.SystemDetailPage(systemDetail(system), loc),
		}
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func baseOptions(bases []int, selected string, loc webi18n.Localizer) []webtemplates.BaseOption {
	if selected == "" {
		selected = registry.BaseAll
	}
	options := make([]webtemplates.BaseOption, 0, len(bases)+1)
	options = append(options, webtemplates.BaseOption{
		Value:    registry.BaseAll,
		Label:    webtemplates.T(loc, "web.library.base_all"),
		Selected: strings.EqualFold(selected, registry.BaseAll),
	})
	for _, base := range bases {
		value := strconv.Itoa(base)
		label := webtemplates.T(loc, "web.library.base_value", base)
		if name := registry.BaseName(base); name != "" {
			label += " (" + name + ")"
		}
		options = append(options, webtemplates.BaseOption{
			Value:    value,
			Label:    label,
			Selected: selected == value,
		})
	}
	return options
}

func systemCards(systems []registry.System) []webtemplates.SystemCard {
	cards := make([]webtemplates.SystemCard, 0, len(systems))
	for _, system := range systems {
		cards = append(cards, webtemplates.SystemCard{
			ID:          system.ID,
			Name:        system.Name,
			Culture:     system.Culture,
			Base:        system.Base,
			Type:        system.Type,
			Description: system.Description,
			DetailURL:   routepath.LibrarySystem(system.ID),
		})
	}
	return cards
}

func systemDetail(system registry.System) webtemplates.SystemDetailView {
	view := webtemplates.SystemDetailView{
		ID:           system.ID,
		Name:         system.Name,
		Culture:      system.Culture,
		Base:         system.Base,
		BaseName:     registry.BaseName(system.Base),
		Type:         system.Type,
		Description:  system.Description,
		History:      system.History,
		Rules:        append([]string(nil), system.ConstructionRules...),
		ConverterURL: routepath.Converter(system.ID, webtemplates.DirectionToCultural),
	}
	for _, symbol := range system.Symbols {
		view.Symbols = append(view.Symbols, webtemplates.SymbolView{Glyph: symbol.Glyph, Value: symbol.Value})
	}
	for _, example := range system.Examples {
		view.Examples = append(view.Examples, webtemplates.ExampleView{
			Arabic:      example.Arabic,
			Cultural:    example.Cultural,
			Explanation: example.Explanation,
		})
	}
	return view
}
