package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/discovery"
	"github.com/louisbranch/numerals.space/internal/platform/timeouts"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serverName    = "numerals-space"
	serverVersion = "0.1.0"

	// mcpHTTPPath is where the streamable HTTP transport is mounted.
	mcpHTTPPath = "/mcp"
)

// TransportKind selects how the MCP server talks to clients.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// ParseTransport validates a transport name. Blank means stdio.
func ParseTransport(value string) (TransportKind, error) {
	switch TransportKind(strings.ToLower(strings.TrimSpace(value))) {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("transport %q is not supported", value)
	}
}

// Config selects the transport and, for HTTP, the listen address.
type Config struct {
	Transport TransportKind
	HTTPAddr  string
}

// Server owns one MCP server bound to a numerals service.
type Server struct {
	mcpServer *mcp.Server
}

// New registers every tool and resource module against service.
func New(service *app.Service) (*Server, error) {
	if service == nil {
		return nil, errors.New("numerals service is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, module := range newMCPRegistrationModules(service) {
		if err := module.register(mcpServer); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	return &Server{mcpServer: mcpServer}, nil
}

// Run builds a server over service and serves it on the configured transport
// until ctx ends.
func Run(ctx context.Context, cfg Config, service *app.Service) error {
	server, err := New(service)
	if err != nil {
		return err
	}
	return server.Serve(ctx, cfg)
}

// Serve blocks on the configured transport.
func (s *Server) Serve(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio:
		return s.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return s.serveHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// serveWithTransport runs a single session until the transport closes or ctx ends.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Handler exposes the streamable HTTP transport plus a liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s != nil && s.mcpServer != nil {
		streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.mcpServer
		}, nil)
		mux.Handle(mcpHTTPPath, streamable)
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return otelhttp.NewHandler(mux, "mcp")
}

func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// Loopback unless an address is configured.
	addr = discovery.OrDefaultDialAddr(addr, discovery.ServiceMCP)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	log.Printf("mcp listening on http://%s%s", addr, mcpHTTPPath)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}
