// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/numerals.space/internal/services/web/module"
	"github.com/louisbranch/numerals.space/internal/services/web/modules/api"
	"github.com/louisbranch/numerals.space/internal/services/web/modules/converter"
	"github.com/louisbranch/numerals.space/internal/services/web/modules/library"
	"github.com/louisbranch/numerals.space/internal/services/web/modules/practice"
)

// Module aliases the module interface contract.
type Module = module.Module

// DefaultModules returns the web modules in mount order.
func DefaultModules(deps module.Dependencies) []Module {
	return []Module{
		library.New(deps),
		converter.New(deps),
		practice.New(deps),
		api.New(deps),
	}
}
