package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/httpserver"
	"finitefield.org/dashpro-admin/internal/admin/session"
	"finitefield.org/dashpro-admin/internal/admin/ui"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithBasePath sets a custom base path for the console routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithDemoService wires a custom demo data source.
func WithDemoService(service demo.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Demo = service
	}
}

// WithScheduler drives toast timers from the given scheduler.
func WithScheduler(s ui.Scheduler) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Scheduler = s
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// FakeClock drives coordinator timers by hand.
type FakeClock = ui.ManualScheduler

// NewFakeClock returns a clock at zero with no pending timers.
func NewFakeClock() *FakeClock {
	return ui.NewManualScheduler()
}

// NewServer constructs an httptest server running the console HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	sessions, err := session.NewManager(session.Config{
		CookieName: "dashpro_session",
		HashKey:    []byte("0123456789abcdef0123456789abcdef"),
	})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	cfg := httpserver.Config{
		Address:     ":0",
		BasePath:    "/",
		Environment: "test",
		Sessions:    sessions,
		Demo:        demo.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown(context.Background())
	})
	return ts
}
