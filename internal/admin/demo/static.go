package demo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

//go:embed data/*.yaml
var fixtures embed.FS

// StaticService provides deterministic fixture data suitable for local development and tests.
type StaticService struct {
	data *Dataset
}

// NewStaticService returns a StaticService populated from the embedded fixtures.
func NewStaticService() *StaticService {
	data, err := Load(fixtures, "data")
	if err != nil {
		panic(fmt.Sprintf("demo: load embedded fixtures: %v", err))
	}
	return &StaticService{data: data}
}

// Load decodes every YAML file under dir into one Dataset. Later files add
// to the tables of earlier ones.
func Load(fsys fs.FS, dir string) (*Dataset, error) {
	names, err := fs.Glob(fsys, dir+"/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := &Dataset{
		KPIs:       map[string][]KPI{},
		Charts:     map[string]chart.Config{},
		PageCharts: map[string][]string{},
	}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var part Dataset
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		merge(out, &part)
	}
	for id, cfg := range out.Charts {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("chart %s: %w", id, err)
		}
	}
	return out, nil
}

func merge(dst, src *Dataset) {
	dst.Orders = append(dst.Orders, src.Orders...)
	dst.Users = append(dst.Users, src.Users...)
	dst.Products = append(dst.Products, src.Products...)
	dst.Categories = append(dst.Categories, src.Categories...)
	dst.Notifications = append(dst.Notifications, src.Notifications...)
	dst.Messages = append(dst.Messages, src.Messages...)
	dst.Ranges = append(dst.Ranges, src.Ranges...)
	for k, v := range src.KPIs {
		dst.KPIs[k] = append(dst.KPIs[k], v...)
	}
	for k, v := range src.Charts {
		dst.Charts[k] = v
	}
	for k, v := range src.PageCharts {
		dst.PageCharts[k] = append(dst.PageCharts[k], v...)
	}
}

// Dataset implements Service.
func (s *StaticService) Dataset(ctx context.Context) (*Dataset, error) {
	if s == nil || s.data == nil {
		return nil, ErrNotConfigured
	}
	return s.data, nil
}

// Chart implements Service.
func (s *StaticService) Chart(ctx context.Context, canvasID string) (chart.Config, error) {
	if s == nil || s.data == nil {
		return chart.Config{}, ErrNotConfigured
	}
	cfg, ok := s.data.Charts[canvasID]
	if !ok {
		return chart.Config{}, fmt.Errorf("%w: %s", ErrNoChart, canvasID)
	}
	return cfg, nil
}
