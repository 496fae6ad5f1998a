package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommw "finitefield.org/dashpro-admin/internal/admin/httpserver/middleware"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/page"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/theme"
)

const maxEventBytes = 64 << 10

// Dependencies collects what the console handlers need.
type Dependencies struct {
	Pages     *page.Registry
	Downloads *page.DownloadStore
	Catalog   *i18n.Catalog
}

// Handlers exposes HTTP handlers for console pages and their events.
type Handlers struct {
	pages     *page.Registry
	downloads *page.DownloadStore
	catalog   *i18n.Catalog
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		pages:     deps.Pages,
		downloads: deps.Downloads,
		catalog:   deps.Catalog,
	}
}

// Home redirects to the dashboard.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, joinBasePath(custommw.BasePathFromContext(r.Context()), "dashboard"), http.StatusFound)
}

// Page renders a fresh live page for the session's preferences.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "page")
	if !page.Known(name) {
		http.NotFound(w, r)
		return
	}

	sess, ok := custommw.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	store := sess.Store(ctx)
	if _, err := store.Get(ctx, preferences.KeyLanguage); errors.Is(err, preferences.ErrNotFound) && h.catalog != nil {
		if err := store.Set(ctx, preferences.KeyLanguage, h.catalog.Match(r.Header.Get("Accept-Language"))); err != nil {
			writeError(w, r, fmt.Errorf("store matched language: %w", err))
			return
		}
	}
	prefs, err := preferences.Open(ctx, store)
	if err != nil {
		observability.FromContext(ctx).Error("open preferences", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	csrf, _ := custommw.CSRFFromContext(ctx)
	p, err := h.pages.Open(ctx, name, prefs, page.RenderOptions{
		EventsURL:   joinBasePath(custommw.BasePathFromContext(ctx), name+"/events"),
		CSRFToken:   csrf.Value,
		CSRFHeader:  csrf.Header,
		Environment: custommw.EnvironmentFromContext(ctx),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess.Remember(ctx, prefs.Snapshot())

	out, err := p.HTML()
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// Events applies one browser event to a live page and returns the new frame.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.pages.Get(chi.URLParam(r, "page"), r.URL.Query().Get("instance"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ev page.Event
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err := dec.Decode(&ev); err != nil {
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}
	frame, err := p.Dispatch(ctx, ev)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sess, ok := custommw.SessionFromContext(ctx); ok {
		sess.Remember(ctx, p.Preferences().Snapshot())
	}
	writeJSON(w, frame)
}

// Language stores the language preference outside of a page, for example
// from a settings form. A live page named by instance switches too.
func (h *Handlers) Language(w http.ResponseWriter, r *http.Request) {
	h.preference(w, r, "lang", func(p *page.Page, value string) error {
		return p.SetLanguage(r.Context(), value)
	}, func(value string) (string, error) {
		if h.catalog == nil {
			return value, nil
		}
		return h.catalog.Resolve(value), nil
	}, preferences.KeyLanguage)
}

// Color stores the primary colour preference.
func (h *Handlers) Color(w http.ResponseWriter, r *http.Request) {
	h.preference(w, r, "color", func(p *page.Page, value string) error {
		return p.SetPrimaryColor(r.Context(), value)
	}, theme.Validate, preferences.KeyPrimaryColor)
}

func (h *Handlers) preference(w http.ResponseWriter, r *http.Request, field string, apply func(*page.Page, string) error, normalize func(string) (string, error), key string) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	value, err := normalize(r.PostForm.Get(field))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, ok := custommw.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	// Resolve the live page first so an expired instance leaves the
	// session untouched.
	var live *page.Page
	if instance := r.PostForm.Get("instance"); instance != "" {
		if live, err = h.pages.Get(r.PostForm.Get("page"), instance); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if err := sess.Set(ctx, key, value); err != nil {
		writeError(w, r, fmt.Errorf("store %s: %w", key, err))
		return
	}
	if live == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := apply(live, value); err != nil {
		writeError(w, r, err)
		return
	}
	frame, err := live.Frame()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, frame)
}

// Chart serves the image of a live chart: {canvas}.svg or {canvas}.png.
func (h *Handlers) Chart(w http.ResponseWriter, r *http.Request) {
	p, err := h.pages.Get(chi.URLParam(r, "page"), r.URL.Query().Get("instance"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	handle, ok := p.Chart(strings.TrimSuffix(file, ext))
	if !ok {
		http.NotFound(w, r)
		return
	}

	var (
		data        []byte
		contentType string
	)
	switch ext {
	case ".svg":
		data, err = handle.SVG()
		contentType = "image/svg+xml"
	case ".png":
		data, err = handle.ExportImage()
		contentType = "image/png"
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

// Download hands out a file produced by an earlier event, once.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request) {
	d, ok := h.downloads.Take(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(d.Filename, `"`, "")+`"`)
	_, _ = w.Write(d.Data)
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{"status": "ok", "pages": h.pages.Len()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, page.ErrUnknownPage):
		http.NotFound(w, r)
	case errors.Is(err, page.ErrPageExpired):
		http.Error(w, "page expired, reload", http.StatusGone)
	case errors.Is(err, page.ErrUnknownEventType), errors.Is(err, page.ErrTargetNotFound), errors.Is(err, theme.ErrInvalidColor):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		observability.FromContext(r.Context()).Error("request failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
