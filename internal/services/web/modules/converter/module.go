// Package converter serves the number conversion page.
package converter

import (
	"errors"
	"net/http"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/web/module"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Module provides the converter routes.
type Module struct {
	service *app.Service
}

// New returns a converter module backed by the numerals service.
func New(deps module.Dependencies) Module {
	return Module{service: deps.Service}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "converter" }

// Mount wires converter route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.service == nil {
		return module.Mount{}, errors.New("numerals service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.service))
	return module.Mount{Prefix: routepath.ConverterPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ConverterPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ConverterPrefix+"{$}", h.handleConvert)
}
