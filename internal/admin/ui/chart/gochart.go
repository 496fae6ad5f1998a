package chart

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 640
	defaultHeight = 360
)

var fallbackPalette = []string{"#5a67d8", "#FF6384", "#36A2EB", "#FFCE56", "#4CAF50", "#9C27B0", "#FF9900"}

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// GoChartRenderer draws charts with go-chart.
type GoChartRenderer struct {
	Width  int
	Height int
}

// NewGoChartRenderer returns a renderer with the default canvas size.
func NewGoChartRenderer() *GoChartRenderer {
	return &GoChartRenderer{Width: defaultWidth, Height: defaultHeight}
}

// Create implements Renderer.
func (r *GoChartRenderer) Create(canvasID string, cfg Config) (Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &goChartHandle{
		canvasID: canvasID,
		cfg:      cfg,
		chart:    build(cfg, width, height),
	}, nil
}

type goChartHandle struct {
	canvasID string
	cfg      Config
	chart    renderable

	mu       sync.Mutex
	disposed bool
}

func (h *goChartHandle) CanvasID() string { return h.canvasID }
func (h *goChartHandle) Config() Config   { return h.cfg }

func (h *goChartHandle) ExportImage() ([]byte, error) {
	return h.render(gochart.PNG)
}

func (h *goChartHandle) SVG() ([]byte, error) {
	return h.render(gochart.SVG)
}

func (h *goChartHandle) Dispose() {
	h.mu.Lock()
	h.disposed = true
	h.chart = nil
	h.mu.Unlock()
}

func (h *goChartHandle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

func (h *goChartHandle) render(rp gochart.RendererProvider) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return nil, ErrDisposed
	}
	var buf bytes.Buffer
	if err := h.chart.Render(rp, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", h.canvasID, err)
	}
	return buf.Bytes(), nil
}

func build(cfg Config, width, height int) renderable {
	switch cfg.Kind {
	case KindLine:
		return buildLine(cfg, width, height)
	case KindPie:
		return &gochart.PieChart{Title: cfg.Title, Width: width, Height: height, Values: values(cfg)}
	case KindDoughnut:
		return &gochart.DonutChart{Title: cfg.Title, Width: width, Height: height, Values: values(cfg)}
	default:
		return &gochart.BarChart{
			Title:    cfg.Title,
			Width:    width,
			Height:   height,
			BarWidth: barWidth(width, len(cfg.Labels)),
			Background: gochart.Style{
				Padding: gochart.Box{Top: 40},
			},
			Bars: values(cfg),
		}
	}
}

func buildLine(cfg Config, width, height int) renderable {
	ticks := make([]gochart.Tick, len(cfg.Labels))
	for i, label := range cfg.Labels {
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	series := make([]gochart.Series, 0, len(cfg.Datasets))
	for i, ds := range cfg.Datasets {
		xs := make([]float64, len(ds.Data))
		for j := range xs {
			xs[j] = float64(j)
		}
		color := colorAt(ds.Colors, 0, i)
		series = append(series, gochart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				FillColor:   color.WithAlpha(64),
			},
		})
	}

	c := &gochart.Chart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		XAxis:  gochart.XAxis{Ticks: ticks},
		Series: series,
	}
	if cfg.ShowLegend {
		c.Elements = []gochart.Renderable{gochart.Legend(c)}
	}
	return c
}

// values flattens the first dataset into labelled slices.
func values(cfg Config) []gochart.Value {
	ds := cfg.Datasets[0]
	out := make([]gochart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		color := colorAt(ds.Colors, i, i)
		out = append(out, gochart.Value{
			Value: v,
			Label: label,
			Style: gochart.Style{FillColor: color, StrokeColor: color},
		})
	}
	return out
}

func colorAt(colors []string, i, fallback int) drawing.Color {
	if len(colors) > 0 {
		return parseColor(colors[i%len(colors)])
	}
	return parseColor(fallbackPalette[fallback%len(fallbackPalette)])
}

func parseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}

func barWidth(width, bars int) int {
	if bars <= 0 {
		return 40
	}
	w := (width - 80) / (bars * 2)
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}
