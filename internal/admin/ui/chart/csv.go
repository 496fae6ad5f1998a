package chart

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSV writes the config as one row per label with one column per dataset.
func CSV(cfg Config) ([]byte, error) {
	if len(cfg.Labels) == 0 || len(cfg.Datasets) == 0 {
		return nil, ErrEmptyChart
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(cfg.Datasets)+1)
	header = append(header, "label")
	for i, ds := range cfg.Datasets {
		name := ds.Label
		if name == "" {
			name = "series " + strconv.Itoa(i+1)
		}
		header = append(header, name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, label := range cfg.Labels {
		row := make([]string, 0, len(header))
		row = append(row, label)
		for _, ds := range cfg.Datasets {
			cell := ""
			if i < len(ds.Data) {
				cell = strconv.FormatFloat(ds.Data[i], 'f', -1, 64)
			}
			row = append(row, cell)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
