package registry

import (
	"strconv"
	"strings"
)

// BaseAll disables base filtering.
const BaseAll = "all"

// Query is the library browsing state: a base selector and free-text search.
type Query struct {
	Base   string
	Search string
}

// Apply returns the systems matching q in their original order. Base must be
// BaseAll, blank, or an exact radix; search is a case-insensitive substring
// over name, culture and description.
func Apply(systems []System, q Query) []System {
	base, filterBase := q.base()
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]System, 0, len(systems))
	for _, system := range systems {
		if filterBase && system.Base != base {
			continue
		}
		if search != "" && !matchesSearch(system, search) {
			continue
		}
		out = append(out, system)
	}
	return out
}

func (q Query) base() (int, bool) {
	value := strings.TrimSpace(q.Base)
	if value == "" || strings.EqualFold(value, BaseAll) {
		return 0, false
	}
	base, err := strconv.Atoi(value)
	if err != nil {
		// An unparseable base matches nothing.
		return -1, true
	}
	return base, true
}

func matchesSearch(system System, search string) bool {
	for _, field := range []string{system.Name, system.Culture, system.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
