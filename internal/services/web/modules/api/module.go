// Package api serves the JSON endpoints over the numerals service.
package api

import (
	"errors"
	"net/http"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/web/module"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Module provides the JSON API routes.
type Module struct {
	service *app.Service
}

// New returns an API module backed by the numerals service.
func New(deps module.Dependencies) Module {
	return Module{service: deps.Service}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires API route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.service == nil {
		return module.Mount{}, errors.New("numerals service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.service))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APISystems, h.handleSystems)
	mux.HandleFunc(http.MethodGet+" "+routepath.APISystemPattern, h.handleSystem)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIConvert, h.handleConvert)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIConvert, h.handleConvert)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProblems, h.handleProblems)
	// Only answer checks need a practice session.
	mux.Handle(http.MethodPost+" "+routepath.APIProblemAnswerPath, sessioncookie.Middleware(http.HandlerFunc(h.handleAnswer)))
}
