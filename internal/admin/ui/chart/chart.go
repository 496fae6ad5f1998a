// Package chart renders dashboard charts behind a disposable handle.
package chart

import (
	"errors"
)

// Kind names a chart type.
type Kind string

const (
	KindBar      Kind = "bar"
	KindLine     Kind = "line"
	KindPie      Kind = "pie"
	KindDoughnut Kind = "doughnut"
)

var (
	// ErrDisposed is returned when exporting from a disposed handle.
	ErrDisposed = errors.New("chart: handle disposed")
	// ErrEmptyChart is returned for configs without labels or data.
	ErrEmptyChart = errors.New("chart: config has no data")
	// ErrUnsupportedKind is returned for unknown chart kinds.
	ErrUnsupportedKind = errors.New("chart: unsupported kind")
)

// Dataset is one labelled numeric series.
type Dataset struct {
	Label  string    `yaml:"label"`
	Data   []float64 `yaml:"data"`
	Colors []string  `yaml:"colors"`
}

// Config declares a chart. Values are passed through untouched.
type Config struct {
	Kind       Kind      `yaml:"kind"`
	Title      string    `yaml:"title"`
	Labels     []string  `yaml:"labels"`
	Datasets   []Dataset `yaml:"datasets"`
	ShowLegend bool      `yaml:"legend"`
}

// Validate checks the config has something to draw.
func (c Config) Validate() error {
	switch c.Kind {
	case KindBar, KindLine, KindPie, KindDoughnut:
	default:
		return ErrUnsupportedKind
	}
	if len(c.Labels) == 0 || len(c.Datasets) == 0 {
		return ErrEmptyChart
	}
	for _, ds := range c.Datasets {
		if len(ds.Data) == 0 {
			return ErrEmptyChart
		}
	}
	return nil
}

// Handle is one live chart instance bound to a canvas.
type Handle interface {
	CanvasID() string
	Config() Config
	// ExportImage renders the chart as PNG.
	ExportImage() ([]byte, error)
	// SVG renders the chart as SVG markup.
	SVG() ([]byte, error)
	Dispose()
	Disposed() bool
}

// Renderer creates chart instances.
type Renderer interface {
	Create(canvasID string, cfg Config) (Handle, error)
}
