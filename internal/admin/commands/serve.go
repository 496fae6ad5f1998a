package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/config"
	"finitefield.org/dashpro-admin/internal/admin/httpserver"
	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/session"
)

const shutdownTimeout = 10 * time.Second

func addServe(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP server.",
		Long:  "Run the console HTTP server. Settings come from DASHPRO_* environment variables.",
		Example: `
DASHPRO_HTTP_ADDR=:9000 dashpro serve
DASHPRO_BASE_PATH=/console DASHPRO_SESSION_HASH_KEY=... dashpro serve
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	topLevel.AddCommand(cmd)
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Session.HashKey == "" {
		logger.Warn("DASHPRO_SESSION_HASH_KEY not set; preferences will not survive a restart")
	}
	hashKey, blockKey := cfg.SessionKeys()
	sessions, err := session.NewManager(session.Config{
		CookieName:   cfg.Session.CookieName,
		HashKey:      hashKey,
		BlockKey:     blockKey,
		CookiePath:   cfg.BasePath,
		CookieSecure: cfg.Session.CookieSecure,
		IdleTimeout:  cfg.Session.IdleTimeout,
	})
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:           cfg.Address,
		BasePath:          cfg.BasePath,
		Environment:       cfg.Environment,
		Logger:            logger,
		Sessions:          sessions,
		CSRFCookieName:    cfg.CSRF.CookieName,
		CSRFCookieSecure:  cfg.Session.CookieSecure,
		CSRFHeaderName:    cfg.CSRF.HeaderName,
		ToastDuration:     cfg.Pages.ToastDuration,
		PageIdleTTL:       cfg.Pages.IdleTTL,
		SidebarBreakpoint: cfg.Pages.SidebarBreakpoint,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("console server listening",
		zap.String("addr", cfg.Address),
		zap.String("base_path", cfg.BasePath),
		zap.String("environment", cfg.Environment),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("console server stopped")
	return nil
}
