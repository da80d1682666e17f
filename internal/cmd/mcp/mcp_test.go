package mcp

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8085" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("NUMERALS_SPACE_MCP_HTTP_ADDR", "env-http")
	t.Setenv("NUMERALS_SPACE_MCP_TRANSPORT", "http")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-http"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected env transport http, got %q", cfg.Transport)
	}
}

func TestParseConfigRejectsUnknownTransport(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-transport", "smoke-signal"}); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestRunHTTPStopsOnCancel(t *testing.T) {
	t.Setenv("NUMERALS_SPACE_OTEL_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, Config{Transport: "http", HTTPAddr: "127.0.0.1:0"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}
