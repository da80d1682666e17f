// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/numerals.space/internal/platform/cmd"
	"github.com/louisbranch/numerals.space/internal/services/mcp/service"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr       string `env:"MCP_HTTP_ADDR"    envDefault:"localhost:8085"`
	Transport      string `env:"MCP_TRANSPORT"    envDefault:"stdio"`
	PracticeDBPath string `env:"PRACTICE_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.PracticeDBPath, "practice-db", cfg.PracticeDBPath, "SQLite path for practice sessions (empty keeps them in memory)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := service.ParseTransport(cfg.Transport); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	transport, err := service.ParseTransport(cfg.Transport)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		numerals, closeStore, err := app.Bootstrap(ctx, app.BootstrapConfig{PracticeDBPath: cfg.PracticeDBPath})
		if err != nil {
			return err
		}
		defer closeStore()

		if err := service.Run(ctx, service.Config{
			Transport: transport,
			HTTPAddr:  cfg.HTTPAddr,
		}, numerals); err != nil {
			return fmt.Errorf("serve mcp: %w", err)
		}
		return nil
	})
}
