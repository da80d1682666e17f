// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies are shared by every module.
type Dependencies struct {
	Service *app.Service
}
