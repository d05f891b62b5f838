package linechart

import (
	"sort"
	"strings"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

// ImageView is what image exporters receive.
type ImageView struct {
	// Surface is the live drawing surface.
	Surface  render.Surface
	Frame    render.Frame
	Metadata models.ImageMetadata
}

// Table returns the rendered samples with their column mapping. Rows are
// a copy; changing them does not affect the chart.
func (h *Handle) Table() models.TableView {
	return models.TableView{
		Columns: append([]models.Column(nil), h.cfg.Columns...),
		Rows:    append([]models.Sample{}, h.data...),
	}
}

// Image returns the surface and a snapshot of the last frame together
// with export metadata.
func (h *Handle) Image() ImageView {
	return ImageView{
		Surface: h.surface,
		Frame:   h.frame,
		Metadata: models.ImageMetadata{
			Title:       h.cfg.Title,
			Filters:     FormatFilters(h.cfg.Filters),
			GeneratedAt: h.cfg.Clock(),
			ProductName: h.cfg.ProductName,
		},
	}
}

// FormatFilters renders filters as "key: v1, v2; key2: v3" sorted by key.
// It returns "None" when no filter has a value.
func FormatFilters(filters map[string][]string) string {
	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "None"
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + strings.Join(filters[k], ", ")
	}
	return strings.Join(parts, "; ")
}
