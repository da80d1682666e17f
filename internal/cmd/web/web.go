// Package web parses web command flags and starts the browser-facing server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/numerals.space/internal/platform/cmd"
	"github.com/louisbranch/numerals.space/internal/platform/metrics"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string `env:"WEB_HTTP_ADDR"     envDefault:":8080"`
	GRPCAddr       string `env:"WEB_GRPC_ADDR"     envDefault:":8092"`
	PracticeDBPath string `env:"PRACTICE_DB_PATH"`
	MetricsEnabled bool   `env:"METRICS_ENABLED"   envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address (empty disables it)")
	fs.StringVar(&cfg.PracticeDBPath, "practice-db", cfg.PracticeDBPath, "SQLite path for practice sessions (empty keeps them in memory)")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "serve Prometheus metrics on /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		var m *metrics.Metrics
		if cfg.MetricsEnabled {
			m = metrics.New()
		}

		service, closeStore, err := app.Bootstrap(ctx, app.BootstrapConfig{
			PracticeDBPath: cfg.PracticeDBPath,
			Metrics:        m,
		})
		if err != nil {
			return err
		}
		defer closeStore()

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			GRPCAddr: cfg.GRPCAddr,
			Service:  service,
			Metrics:  m,
			Logger:   log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
