package modules

import (
	"testing"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	module "github.com/louisbranch/numerals.space/internal/services/web/module"
)

func TestDefaultModulesHaveUniqueIDsAndPrefixes(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	prefixes := map[string]bool{}
	for _, feature := range DefaultModules(module.Dependencies{Service: app.New()}) {
		if ids[feature.ID()] {
			t.Fatalf("duplicate module id %q", feature.ID())
		}
		ids[feature.ID()] = true

		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("Mount(%q) error = %v", feature.ID(), err)
		}
		if prefixes[mount.Prefix] {
			t.Fatalf("duplicate prefix %q", mount.Prefix)
		}
		prefixes[mount.Prefix] = true
	}
	if len(ids) != 4 {
		t.Fatalf("modules = %d, want 4", len(ids))
	}
}
