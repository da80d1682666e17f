package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/metrics"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage/memory"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage/sqlite"
)

// BootstrapConfig selects the process-level dependencies of a Service.
type BootstrapConfig struct {
	// PracticeDBPath enables the sqlite session store. Blank keeps sessions
	// in memory for the life of the process.
	PracticeDBPath string
	Metrics        *metrics.Metrics
}

// Bootstrap builds a Service for a binary and returns a closer for the
// session store it opened.
func Bootstrap(ctx context.Context, cfg BootstrapConfig) (*Service, func(), error) {
	var (
		store   storage.SessionStore
		closeFn = func() {}
	)
	if path := strings.TrimSpace(cfg.PracticeDBPath); path != "" {
		sqliteStore, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open practice store: %w", err)
		}
		store = sqliteStore
		closeFn = func() {
			if err := sqliteStore.Close(); err != nil {
				log.Printf("close practice store: %v", err)
			}
		}
	} else {
		store = memory.New()
	}

	service := New(
		WithSessionStore(store),
		WithMetrics(cfg.Metrics),
	)
	return service, closeFn, nil
}
