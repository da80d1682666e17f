// Package registry holds the static catalog of numeral systems.
package registry

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed systems.toml
var systemsTOML []byte

// Symbol maps one glyph or word to its value.
type Symbol struct {
	Glyph string `toml:"glyph" json:"glyph"`
	Value int    `toml:"value" json:"value"`
}

// Example is a worked conversion shown with the system.
type Example struct {
	Arabic      int    `toml:"arabic" json:"arabic"`
	Cultural    string `toml:"cultural" json:"cultural"`
	Explanation string `toml:"explanation" json:"explanation"`
}

// System describes one numeral system. Type is descriptive and does not
// drive conversion.
type System struct {
	ID                string    `toml:"id" json:"id"`
	Name              string    `toml:"name" json:"name"`
	Culture           string    `toml:"culture" json:"culture"`
	Base              int       `toml:"base" json:"base"`
	Type              string    `toml:"type" json:"type"`
	Description       string    `toml:"description" json:"description"`
	History           string    `toml:"history" json:"history"`
	ConstructionRules []string  `toml:"construction_rules" json:"construction_rules"`
	Symbols           []Symbol  `toml:"symbols" json:"symbols"`
	Examples          []Example `toml:"examples" json:"examples"`
}

type systemsFile struct {
	Systems []System `toml:"systems"`
}

// Registry is an immutable, ordered set of systems.
type Registry struct {
	systems []System
	byID    map[string]int
}

var defaultRegistry = mustLoad(systemsTOML)

func mustLoad(data []byte) *Registry {
	r, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("load numeral systems: %v", err))
	}
	return r
}

// Load decodes a systems TOML document. Ids must be unique and non-empty,
// bases positive, and every system needs at least one example.
func Load(data []byte) (*Registry, error) {
	var file systemsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode systems: %w", err)
	}
	if len(file.Systems) == 0 {
		return nil, fmt.Errorf("no systems declared")
	}

	r := &Registry{byID: make(map[string]int, len(file.Systems))}
	for i, system := range file.Systems {
		id := strings.TrimSpace(system.ID)
		if id == "" {
			return nil, fmt.Errorf("system %d: id is required", i)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("system %q: duplicate id", id)
		}
		if system.Base <= 0 {
			return nil, fmt.Errorf("system %q: base must be positive", id)
		}
		if len(system.Examples) == 0 {
			return nil, fmt.Errorf("system %q: at least one example is required", id)
		}
		system.ID = id
		r.byID[id] = len(r.systems)
		r.systems = append(r.systems, system)
	}
	return r, nil
}

// Default returns the embedded registry.
func Default() *Registry {
	return defaultRegistry
}

// Get returns the system with id.
func (r *Registry) Get(id string) (System, bool) {
	idx, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return System{}, false
	}
	return r.systems[idx].clone(), true
}

// List returns every system in declaration order.
func (r *Registry) List() []System {
	out := make([]System, len(r.systems))
	for i, system := range r.systems {
		out[i] = system.clone()
	}
	return out
}

// IDs returns the system ids in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, system := range r.systems {
		ids[i] = system.ID
	}
	return ids
}

// Bases returns the distinct bases in ascending order.
func (r *Registry) Bases() []int {
	seen := map[int]bool{}
	var bases []int
	for _, system := range r.systems {
		if !seen[system.Base] {
			seen[system.Base] = true
			bases = append(bases, system.Base)
		}
	}
	slices.Sort(bases)
	return bases
}

// Get returns the system with id from the embedded registry.
func Get(id string) (System, bool) {
	return defaultRegistry.Get(id)
}

// List returns the embedded systems in declaration order.
func List() []System {
	return defaultRegistry.List()
}

// IDs returns the embedded system ids in declaration order.
func IDs() []string {
	return defaultRegistry.IDs()
}

// BaseName names a radix for display.
func BaseName(base int) string {
	switch base {
	case 10:
		return "decimal"
	case 20:
		return "vigesimal"
	case 60:
		return "sexagesimal"
	default:
		return "base-" + strconv.Itoa(base)
	}
}

func (s System) clone() System {
	s.ConstructionRules = append([]string(nil), s.ConstructionRules...)
	s.Symbols = append([]Symbol(nil), s.Symbols...)
	s.Examples = append([]Example(nil), s.Examples...)
	return s
}
