// Package dataset loads chart samples from JSON, YAML and xlsx files.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Format is an input file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// dateLayouts are tried in order when parsing a date string.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

type record struct {
	Date  string  `json:"date" yaml:"date"`
	Value float64 `json:"value" yaml:"value"`
	Group string  `json:"group,omitempty" yaml:"group,omitempty"`
}

// Decode reads a list of {date, value, group} records. Dates are RFC 3339
// or YYYY-MM-DD. Input order is kept.
func Decode(r io.Reader, format Format) ([]models.Sample, error) {
	var records []record
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	samples := make([]models.Sample, 0, len(records))
	for i, rec := range records {
		d, err := ParseDate(rec.Date)
		if err != nil {
			return nil, recordError(i, "%v", err)
		}
		if math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) {
			return nil, recordError(i, "value %v is not finite", rec.Value)
		}
		samples = append(samples, models.Sample{Date: d, Value: rec.Value, Group: rec.Group})
	}
	return samples, nil
}

// ParseDate parses s as RFC 3339 or YYYY-MM-DD. Dates without a zone are
// UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
