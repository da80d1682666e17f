// Package app composes web modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/numerals.space/internal/services/web/module"
)

// ComposeInput carries the modules to mount and any extra fixed routes.
type ComposeInput struct {
	Modules []module.Module
	// Extra maps exact patterns (such as "/healthz") to handlers mounted
	// beside the modules.
	Extra map[string]http.Handler
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}

	for pattern, handler := range input.Extra {
		if handler == nil {
			return nil, fmt.Errorf("route %q: handler is required", pattern)
		}
		if previous, ok := seen[pattern]; ok {
			return nil, fmt.Errorf("route %q duplicates prefix owned by module %q", pattern, previous)
		}
		seen[pattern] = pattern
		root.Handle(pattern, handler)
	}
	return root, nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
