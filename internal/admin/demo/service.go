// Package demo serves the fixture data rendered by the console pages.
package demo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

var (
	// ErrNotConfigured indicates the demo service dependency has not been provided.
	ErrNotConfigured = errors.New("demo service not configured")
	// ErrNoChart indicates no chart definition exists for a canvas id.
	ErrNoChart = errors.New("demo: no chart for canvas")
	// ErrUnknownRange indicates an analytics date range id that is not defined.
	ErrUnknownRange = errors.New("demo: unknown date range")
)

// Service exposes the fixture data used by the pages.
type Service interface {
	// Dataset returns the full fixture set.
	Dataset(ctx context.Context) (*Dataset, error)
	// Chart returns the raw chart definition for a canvas id.
	Chart(ctx context.Context, canvasID string) (chart.Config, error)
}

// Dataset groups every fixture table.
type Dataset struct {
	Orders        []Order                 `yaml:"orders"`
	Users         []User                  `yaml:"users"`
	Products      []Product               `yaml:"products"`
	Categories    []Category              `yaml:"categories"`
	Notifications []Notification          `yaml:"notifications"`
	Messages      []Message               `yaml:"messages"`
	Ranges        []DateRange             `yaml:"ranges"`
	KPIs          map[string][]KPI        `yaml:"kpis"`
	Charts        map[string]chart.Config `yaml:"charts"`
	PageCharts    map[string][]string     `yaml:"pageCharts"`
}

// Order is one row of the orders table.
type Order struct {
	ID       string `yaml:"id"`
	Customer string `yaml:"customer"`
	Date     string `yaml:"date"`
	Amount   string `yaml:"amount"`
	Status   string `yaml:"status"`
	Products string `yaml:"products"`
}

// User is one row of the users table.
type User struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Role           string `yaml:"role"`
	Status         string `yaml:"status"`
	RegisteredDate string `yaml:"registeredDate"`
}

// Product is one row of the products table.
type Product struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Stock    string `yaml:"stock"`
	Status   string `yaml:"status"`
	Images   int    `yaml:"images"`
}

// Category is one row of the categories table. Categories without a
// DescriptionKey render the no-description placeholder.
type Category struct {
	ID             string `yaml:"id"`
	NameKey        string `yaml:"nameKey"`
	Name           string `yaml:"name"`
	TotalProducts  int    `yaml:"totalProducts"`
	LastUpdated    string `yaml:"lastUpdated"`
	DescriptionKey string `yaml:"descriptionKey"`
}

// Notification is a header notification entry.
type Notification struct {
	ID        string `yaml:"id"`
	TitleKey  string `yaml:"titleKey"`
	DetailKey string `yaml:"detailKey"`
	Icon      string `yaml:"icon"`
	Time      string `yaml:"time"`
	Unread    bool   `yaml:"unread"`
}

// Message is a header inbox entry.
type Message struct {
	ID         string `yaml:"id"`
	Sender     string `yaml:"sender"`
	SubjectKey string `yaml:"subjectKey"`
	PreviewKey string `yaml:"previewKey"`
	DetailKey  string `yaml:"detailKey"`
	Time       string `yaml:"time"`
	Unread     bool   `yaml:"unread"`
}

// DateRange is an analytics filter preset. Scale multiplies the analytics
// chart series.
type DateRange struct {
	ID       string  `yaml:"id"`
	LabelKey string  `yaml:"labelKey"`
	Scale    float64 `yaml:"scale"`
}

// Trend describes the direction of a KPI delta.
type Trend string

const (
	TrendFlat Trend = "flat"
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// KPI is a summary card. Modal names the details modal opened by the card.
type KPI struct {
	ID       string `yaml:"id"`
	LabelKey string `yaml:"labelKey"`
	Value    string `yaml:"value"`
	Trend    Trend  `yaml:"trend"`
	Change   string `yaml:"change"`
	Icon     string `yaml:"icon"`
	Modal    string `yaml:"modal"`
}

// ModalChartID returns the canvas id rendered inside the KPI's modal.
func (k KPI) ModalChartID() string {
	if k.Modal == "" {
		return ""
	}
	return k.Modal + "Chart"
}

// Range returns the date range with the given id.
func (d *Dataset) Range(id string) (DateRange, error) {
	for _, r := range d.Ranges {
		if r.ID == id {
			return r, nil
		}
	}
	return DateRange{}, ErrUnknownRange
}

// KPIByModal finds the card that opens modalID.
func (d *Dataset) KPIByModal(modalID string) (KPI, bool) {
	for _, cards := range d.KPIs {
		for _, k := range cards {
			if k.Modal == modalID {
				return k, true
			}
		}
	}
	return KPI{}, false
}

var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Localize returns a copy of cfg with every {key} placeholder in the title,
// labels and dataset labels replaced through text.
func Localize(cfg chart.Config, text func(key string) string) chart.Config {
	expand := func(s string) string {
		if !strings.Contains(s, "{") {
			return s
		}
		return placeholder.ReplaceAllStringFunc(s, func(m string) string {
			return text(m[1 : len(m)-1])
		})
	}

	out := cfg
	out.Title = expand(cfg.Title)
	out.Labels = make([]string, len(cfg.Labels))
	for i, l := range cfg.Labels {
		out.Labels[i] = expand(l)
	}
	out.Datasets = make([]chart.Dataset, len(cfg.Datasets))
	for i, ds := range cfg.Datasets {
		out.Datasets[i] = chart.Dataset{
			Label:  expand(ds.Label),
			Data:   append([]float64(nil), ds.Data...),
			Colors: append([]string(nil), ds.Colors...),
		}
	}
	return out
}

// Scale returns a copy of cfg with every data point multiplied by factor.
func Scale(cfg chart.Config, factor float64) chart.Config {
	out := cfg
	out.Datasets = make([]chart.Dataset, len(cfg.Datasets))
	for i, ds := range cfg.Datasets {
		data := make([]float64, len(ds.Data))
		for j, v := range ds.Data {
			data[j] = v * factor
		}
		out.Datasets[i] = chart.Dataset{Label: ds.Label, Data: data, Colors: ds.Colors}
	}
	return out
}
