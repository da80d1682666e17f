// Package practice serves the practice zone: difficulty lists, problems and
// answer checking backed by the visitor's session.
package practice

import (
	"errors"
	"net/http"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/web/module"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Module provides the practice routes.
type Module struct {
	service *app.Service
}

// New returns a practice module backed by the numerals service.
func New(deps module.Dependencies) Module {
	return Module{service: deps.Service}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "practice" }

// Mount wires practice route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.service == nil {
		return module.Mount{}, errors.New("numerals service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.service))
	return module.Mount{Prefix: routepath.PracticePrefix, Handler: sessioncookie.Middleware(mux)}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticeProblemPath, h.handleProblem)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeAnswerPath, h.handleAnswer)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeHintPath, h.handleHint)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeSolutionPath, h.handleSolution)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeClosePath, h.handleClose)
}
