// Package web hosts the numerals HTTP surface: server-rendered library,
// converter and practice pages plus the JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/numerals.space/internal/platform/grpc"
	"github.com/louisbranch/numerals.space/internal/platform/metrics"
	"github.com/louisbranch/numerals.space/internal/platform/timeouts"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	webapp "github.com/louisbranch/numerals.space/internal/services/web/app"
	"github.com/louisbranch/numerals.space/internal/services/web/module"
	"github.com/louisbranch/numerals.space/internal/services/web/modules"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/observability"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/weberror"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
	"github.com/louisbranch/numerals.space/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// GRPCAddr serves grpc.health.v1 when set.
	GRPCAddr string
	Service  *app.Service
	// Metrics backs /metrics and the request counter; nil disables both.
	Metrics *metrics.Metrics
	Logger  *log.Logger
}

// Server hosts the web HTTP server and its gRPC health endpoint.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *platformgrpc.HealthServer
}

// NewHandler composes the web modules and fixed routes behind the shared
// middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	if config.Service == nil {
		return nil, errors.New("numerals service is required")
	}
	extra := map[string]http.Handler{
		http.MethodGet + " " + routepath.Root + "{$}": http.RedirectHandler(routepath.LibraryPrefix, http.StatusFound),
		http.MethodGet + " " + routepath.Health:       http.HandlerFunc(handleHealth),
		routepath.StaticPrefix:                         http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))),
		routepath.Root:                                 http.HandlerFunc(weberror.NotFound),
	}
	if config.Metrics != nil {
		extra[http.MethodGet+" "+routepath.Metrics] = config.Metrics.Handler()
	}

	mux, err := webapp.Compose(webapp.ComposeInput{
		Modules: modules.DefaultModules(module.Dependencies{Service: config.Service}),
		Extra:   extra,
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing("web"),
		observability.Metrics(config.Metrics),
		observability.RequestLogger(config.Logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}

	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}
	if grpcAddr := strings.TrimSpace(config.GRPCAddr); grpcAddr != "" {
		health, err := platformgrpc.NewHealthServer(grpcAddr, discovery.ServiceWeb)
		if err != nil {
			return nil, fmt.Errorf("start grpc health: %w", err)
		}
		server.health = health
	}
	return server, nil
}

// ListenAndServe serves HTTP, and gRPC health when configured, until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	healthErr := make(chan error, 1)
	if s.health != nil {
		go func() {
			healthErr <- s.health.Serve(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-healthErr:
		if ctx.Err() != nil {
			return s.shutdown()
		}
		_ = s.httpServer.Close()
		if err != nil {
			return err
		}
		return errors.New("grpc health stopped unexpectedly")
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Close releases the listeners held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Close()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Close(); err != nil {
			log.Printf("close http server: %v", err)
		}
	}
}
