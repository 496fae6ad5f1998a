package ui

import (
	"strconv"

	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/dom"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

// chartSlot owns the single live chart for one canvas. render is the only
// way to bind a chart, and it always disposes the previous one first.
type chartSlot struct {
	canvasID string
	handle   chart.Handle
	revision int
}

func (s *chartSlot) render(r chart.Renderer, cfg chart.Config) error {
	s.dispose()
	h, err := r.Create(s.canvasID, cfg)
	if err != nil {
		return err
	}
	s.handle = h
	s.revision++
	return nil
}

func (s *chartSlot) dispose() {
	if s.handle != nil {
		s.handle.Dispose()
		s.handle = nil
	}
}

// Download is a file produced for the client to save.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RenderChart draws cfg on canvasID, replacing any chart already there.
func (c *Coordinator) RenderChart(canvasID string, cfg chart.Config) bool {
	canvas := dom.ByID(c.doc.Selection, canvasID)
	if canvas.Length() == 0 {
		c.warnMissing("canvas", canvasID)
		return false
	}

	slot, ok := c.charts[canvasID]
	if !ok {
		slot = &chartSlot{canvasID: canvasID}
		c.charts[canvasID] = slot
	}
	if err := slot.render(c.render, cfg); err != nil {
		c.logger.Error("render chart", zap.String("canvas", canvasID), zap.Error(err))
		return false
	}

	canvas.SetAttr("data-chart-kind", string(cfg.Kind))
	canvas.SetAttr("data-chart-revision", strconv.Itoa(slot.revision))
	if c.source != nil {
		img := canvas.Find("img.chart-image")
		if img.Length() == 0 {
			canvas.AppendHtml(`<img class="chart-image" alt="">`)
			img = canvas.Find("img.chart-image")
		}
		img.SetAttr("src", c.source(canvasID, slot.revision))
		img.SetAttr("alt", cfg.Title)
	}
	return true
}

// Chart returns the live handle bound to canvasID.
func (c *Coordinator) Chart(canvasID string) (chart.Handle, bool) {
	slot, ok := c.charts[canvasID]
	if !ok || slot.handle == nil {
		return nil, false
	}
	return slot.handle, true
}

// DownloadChart exports the chart bound to canvasID as a PNG.
func (c *Coordinator) DownloadChart(canvasID, filename string) (Download, bool) {
	handle, ok := c.Chart(canvasID)
	if !ok {
		c.logger.Warn("no chart bound to canvas", zap.String("canvas", canvasID))
		return Download{}, false
	}
	data, err := handle.ExportImage()
	if err != nil {
		c.logger.Error("export chart", zap.String("canvas", canvasID), zap.Error(err))
		return Download{}, false
	}
	if filename == "" {
		filename = canvasID + ".png"
	}
	return Download{Filename: filename, ContentType: "image/png", Data: data}, true
}

// ExportChartCSV exports the data behind the chart bound to canvasID.
func (c *Coordinator) ExportChartCSV(canvasID string) (Download, bool) {
	handle, ok := c.Chart(canvasID)
	if !ok {
		c.logger.Warn("no chart bound to canvas", zap.String("canvas", canvasID))
		return Download{}, false
	}
	data, err := chart.CSV(handle.Config())
	if err != nil {
		c.logger.Error("export chart csv", zap.String("canvas", canvasID), zap.Error(err))
		return Download{}, false
	}
	return Download{Filename: canvasID + ".csv", ContentType: "text/csv", Data: data}, true
}
