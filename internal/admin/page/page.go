// Package page owns live console pages: one rendered document per browser
// tab, the coordinator bound to it, and the event dispatch that replays
// browser interaction against it.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/analytics"
	"finitefield.org/dashpro-admin/internal/admin/templates/helpers"
	"finitefield.org/dashpro-admin/internal/admin/templates/layout"
	"finitefield.org/dashpro-admin/internal/admin/theme"
	"finitefield.org/dashpro-admin/internal/admin/ui"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

// ErrUnknownPage is returned for page names outside Names.
var ErrUnknownPage = errors.New("page: unknown page")

// Downloads stores files produced by events until the browser fetches them.
type Downloads interface {
	Put(d ui.Download) string
}

// Factory builds live pages.
type Factory struct {
	Localizer         *i18n.Localizer
	Demo              demo.Service
	Logger            *zap.Logger
	Scheduler         ui.Scheduler
	Charts            chart.Renderer
	Downloads         Downloads
	ToastDuration     time.Duration
	SidebarBreakpoint int
	// ChartURL builds the image URL of a rendered canvas.
	ChartURL func(page, instance, canvasID string, revision int) string
}

// RenderOptions carries per-request values baked into the markup.
type RenderOptions struct {
	EventsURL   string
	CSRFToken   string
	CSRFHeader  string
	Environment string
}

// Page is one live document. Every exported method is safe for concurrent
// use; events and timer callbacks are serialised.
type Page struct {
	id   string
	name string

	mu        sync.Mutex
	doc       *goquery.Document
	coord     *ui.Coordinator
	loc       *i18n.Localizer
	rows      *rows.Controller
	prefs     *preferences.Active
	data      *demo.Dataset
	downloads Downloads
	logger    *zap.Logger

	rangeID  string
	lastUsed time.Time
}

// New renders page name for prefs and loads the stored preferences into it.
func (f *Factory) New(ctx context.Context, name string, prefs *preferences.Active, opts RenderOptions) (*Page, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	if prefs == nil {
		var err error
		if prefs, err = preferences.Open(ctx, nil); err != nil {
			return nil, err
		}
	}
	data, err := f.Demo.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	id := ulid.Make().String()
	logger := observability.OrNop(f.Logger).With(zap.String("page", name), zap.String("instance", id))

	body := build(data, prefs.Language())
	shell := layout.Shell{
		Page:          name,
		TitleKey:      body.titleKey,
		Lang:          i18n.DefaultLanguage,
		EventsURL:     opts.EventsURL,
		Instance:      id,
		CSRFToken:     opts.CSRFToken,
		CSRFField:     opts.CSRFHeader,
		Environment:   opts.Environment,
		Languages:     languages(f.Localizer.Catalog()),
		Notifications: data.Notifications,
		Messages:      data.Messages,
	}
	english := func(key string) string { return f.Localizer.Text(i18n.DefaultLanguage, key) }
	markup, err := helpers.Render(helpers.WithTranslator(ctx, english), layout.Page(shell, body.body))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	p := &Page{
		id:        id,
		name:      name,
		doc:       doc,
		loc:       f.Localizer,
		prefs:     prefs,
		data:      data,
		downloads: f.Downloads,
		logger:    logger,
		rangeID:   analytics.DefaultRange,
		lastUsed:  time.Now(),
	}
	var source func(string, int) string
	if f.ChartURL != nil {
		source = func(canvasID string, revision int) string {
			return f.ChartURL(name, id, canvasID, revision)
		}
	}
	p.coord = ui.NewCoordinator(doc, ui.Options{
		Logger:            logger,
		Scheduler:         f.Scheduler,
		Renderer:          f.Charts,
		ToastDuration:     f.ToastDuration,
		SidebarBreakpoint: f.SidebarBreakpoint,
		Locker:            &p.mu,
		ChartSource:       source,
	})
	p.rows = rows.New(p.coord, p.text, rows.WithLogger(logger))

	if err := p.Load(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func languages(catalog *i18n.Catalog) []layout.Language {
	labels := map[string]string{"en": "languageEnglish", "id": "languageIndonesian", "es": "languageSpanish"}
	var out []layout.Language
	for _, code := range catalog.Languages() {
		key, ok := labels[code]
		if !ok {
			continue
		}
		out = append(out, layout.Language{Code: code, LabelKey: key})
	}
	return out
}

// ID returns the page instance id.
func (p *Page) ID() string { return p.id }

// Name returns the page name.
func (p *Page) Name() string { return p.name }

// Preferences returns the preferences the page writes through.
func (p *Page) Preferences() *preferences.Active { return p.prefs }

// LastUsed reports when the page last handled a request.
func (p *Page) LastUsed() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastUsed
}

// Load applies the stored colour, then the stored language, then renders
// the page's initial charts.
func (p *Page) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	color := p.prefs.PrimaryColor()
	if err := theme.Apply(p.doc, color); err != nil {
		p.logger.Warn("stored primary colour rejected", zap.String("color", color), zap.Error(err))
		_ = theme.Apply(p.doc, preferences.DefaultPrimaryColor)
	}
	if err := p.setLanguage(ctx, p.prefs.Language()); err != nil {
		return err
	}
	p.renderPageCharts()
	return nil
}

// text resolves key in the active language.
func (p *Page) text(key string) string {
	return p.loc.Text(p.prefs.Language(), key)
}

func (p *Page) setLanguage(ctx context.Context, code string) error {
	report, err := p.loc.SetLanguage(ctx, p.doc, p.prefs, code)
	p.doc.Find("html").First().SetAttr("lang", report.Language)
	if err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	if len(report.Missing) > 0 {
		p.logger.Debug("untranslated nodes", zap.String("language", report.Language), zap.Int("missing", len(report.Missing)))
	}
	return nil
}

func (p *Page) setColor(ctx context.Context, value string) error {
	color, err := theme.Validate(value)
	if err != nil {
		return err
	}
	if previous := theme.Current(p.doc); previous != color {
		p.logger.Debug("primary colour changed", zap.String("from", previous), zap.String("to", color))
	}
	if err := theme.Apply(p.doc, color); err != nil {
		return err
	}
	return p.prefs.SetPrimaryColor(ctx, color)
}

// renderPageCharts draws the page's chart cards in the active language.
func (p *Page) renderPageCharts() {
	for _, id := range p.data.PageCharts[p.name] {
		p.renderChart(id)
	}
}

func (p *Page) renderChart(canvasID string) bool {
	cfg, ok := p.data.Charts[canvasID]
	if !ok {
		p.logger.Warn("no chart definition", zap.String("canvas", canvasID))
		return false
	}
	cfg = demo.Localize(cfg, p.text)
	if p.name == analytics.PageName {
		if r, err := p.data.Range(p.rangeID); err == nil {
			cfg = demo.Scale(cfg, r.Scale)
		}
	}
	return p.coord.RenderChart(canvasID, cfg)
}

// SetLanguage switches the page language outside of a browser event.
func (p *Page) SetLanguage(ctx context.Context, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastUsed = time.Now()
	if err := p.setLanguage(ctx, code); err != nil {
		return err
	}
	p.renderPageCharts()
	return nil
}

// SetPrimaryColor switches the theme colour outside of a browser event.
func (p *Page) SetPrimaryColor(ctx context.Context, color string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastUsed = time.Now()
	return p.setColor(ctx, color)
}

// Frame is the part of the document the browser swaps in.
type Frame struct {
	Lang  string `json:"lang"`
	Style string `json:"style"`
	Body  string `json:"body"`
	Result
}

// Frame snapshots the live document.
func (p *Page) Frame() (Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame()
}

func (p *Page) frame() (Frame, error) {
	root := p.doc.Find("html").First()
	body, err := p.doc.Find("body").First().Html()
	if err != nil {
		return Frame{}, fmt.Errorf("serialise body: %w", err)
	}
	return Frame{Lang: root.AttrOr("lang", ""), Style: root.AttrOr("style", ""), Body: body}, nil
}

// HTML serialises the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out, err := goquery.OuterHtml(p.doc.Children())
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>" + out, nil
}

// Dispatch applies ev to the document and returns the resulting frame.
func (p *Page) Dispatch(ctx context.Context, ev Event) (Frame, error) {
	if err := ev.Validate(); err != nil {
		return Frame{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastUsed = time.Now()

	applyValues(p.doc, ev.Values)
	target, err := resolveTarget(p.doc, ev.Target)
	if err != nil {
		return Frame{}, err
	}
	var result Result
	p.dispatch(&call{ctx: ctx, ev: &ev, target: target, result: &result})

	frame, err := p.frame()
	if err != nil {
		return Frame{}, err
	}
	frame.Result = result
	return frame, nil
}

// Chart returns the live chart bound to canvasID.
func (p *Page) Chart(canvasID string) (chart.Handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.coord.Chart(canvasID)
}

// Toast returns the current toast state.
func (p *Page) Toast() ui.ToastState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.coord.Toast()
}

// Inspect runs fn with the locked document, for read-only checks.
func (p *Page) Inspect(fn func(doc *goquery.Document, coord *ui.Coordinator)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.doc, p.coord)
}

// Close releases the page's timers and charts.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coord.Close()
}
