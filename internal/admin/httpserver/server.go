package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/config"
	"finitefield.org/dashpro-admin/internal/admin/demo"
	custommw "finitefield.org/dashpro-admin/internal/admin/httpserver/middleware"
	"finitefield.org/dashpro-admin/internal/admin/httpserver/ui"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/page"
	"finitefield.org/dashpro-admin/internal/admin/session"
	consoleui "finitefield.org/dashpro-admin/internal/admin/ui"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
	"finitefield.org/dashpro-admin/public"
)

// Config holds runtime options for the console HTTP server.
type Config struct {
	Address     string
	BasePath    string
	Environment string
	Logger      *zap.Logger

	Catalog   *i18n.Catalog
	Demo      demo.Service
	Scheduler consoleui.Scheduler
	Charts    chart.Renderer

	Sessions         *session.Manager
	CSRFCookieName   string
	CSRFCookieSecure bool
	CSRFHeaderName   string

	ToastDuration     time.Duration
	PageIdleTTL       time.Duration
	SidebarBreakpoint int
}

// New constructs the HTTP server with middleware stack and embedded assets.
// Idle live pages are swept every minute and the rest are released when the
// server shuts down.
func New(cfg Config) (*http.Server, error) {
	logger := observability.OrNop(cfg.Logger)
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("httpserver: session manager is required")
	}
	if cfg.Catalog == nil {
		catalog, err := i18n.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cfg.Catalog = catalog
	}
	if cfg.Demo == nil {
		cfg.Demo = demo.NewStaticService()
	}
	if cfg.Charts == nil {
		cfg.Charts = chart.NewGoChartRenderer()
	}

	assets, err := public.Handler()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.AccessLog(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	router.Handle(public.Prefix+"*", assets)

	basePath := config.NormalizeBasePath(cfg.BasePath)
	downloads := page.NewDownloadStore(5 * time.Minute)
	factory := &page.Factory{
		Localizer:         i18n.NewLocalizer(cfg.Catalog, logger),
		Demo:              cfg.Demo,
		Logger:            logger,
		Scheduler:         cfg.Scheduler,
		Charts:            cfg.Charts,
		Downloads:         downloads,
		ToastDuration:     cfg.ToastDuration,
		SidebarBreakpoint: cfg.SidebarBreakpoint,
		ChartURL: func(name, instance, canvasID string, revision int) string {
			return fmt.Sprintf("%s?instance=%s&rev=%d", joinPath(basePath, name+"/charts/"+canvasID+".svg"), instance, revision)
		},
	}
	registry := page.NewRegistry(factory, page.WithIdleTTL(cfg.PageIdleTTL))

	handlers := ui.NewHandlers(ui.Dependencies{
		Pages:     registry,
		Downloads: downloads,
		Catalog:   cfg.Catalog,
	})

	mountConsoleRoutes(router, basePath, handlers, routeOptions{
		Sessions:    cfg.Sessions,
		Environment: cfg.Environment,
		Logger:      logger,
		CSRF: custommw.CSRFConfig{
			CookieName: cfg.CSRFCookieName,
			CookiePath: basePath,
			HeaderName: cfg.CSRFHeaderName,
			Secure:     cfg.CSRFCookieSecure,
		},
	})

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	stopSweeping := registry.StartSweeping(nil, page.DefaultSweepInterval)
	srv.RegisterOnShutdown(func() {
		stopSweeping()
		registry.Close()
	})
	return srv, nil
}

type routeOptions struct {
	Sessions    *session.Manager
	Environment string
	Logger      *zap.Logger
	CSRF        custommw.CSRFConfig
}

func mountConsoleRoutes(router chi.Router, base string, h *ui.Handlers, opts routeOptions) {
	router.Get(joinPath(base, "healthz"), h.Health)
	if base != "/" {
		router.Get(base, http.RedirectHandler(joinPath(base, "dashboard"), http.StatusFound).ServeHTTP)
	}

	router.Route(base, func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware(base))
		r.Use(custommw.Environment(opts.Environment))
		r.Use(custommw.NoStore())
		r.Use(custommw.Session(opts.Sessions, opts.Logger))
		r.Use(custommw.CSRF(opts.CSRF))

		r.Get("/", h.Home)
		r.Get("/downloads/{id}", h.Download)
		r.Post("/preferences/language", h.Language)
		r.Post("/preferences/color", h.Color)
		r.Get("/{page}", h.Page)
		r.With(chimw.AllowContentType("application/json")).Post("/{page}/events", h.Events)
		r.Get("/{page}/charts/{file}", h.Chart)
	})
}

func joinPath(base, suffix string) string {
	if base == "/" {
		return "/" + suffix
	}
	return base + "/" + suffix
}
