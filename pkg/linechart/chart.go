// Package linechart renders an interactive time-series line chart.
//
// Initialize measures the host and builds the drawing layers once. Each
// Update rescales, redraws and rebinds the hover tooltip. The engine only
// talks to a render.Surface, so it runs the same against the SVG surface
// and against test doubles.
package linechart

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
	"github.com/ukaji3/linechart-go/pkg/linechart/scale"
	"github.com/ukaji3/linechart-go/pkg/linechart/tooltip"
)

// Handle is an initialised chart.
//
// A Handle is not safe for concurrent use.
type Handle struct {
	cfg      Config
	logger   *slog.Logger
	surface  render.Surface
	layout   render.Layout
	renderer *render.Renderer
	tooltip  *tooltip.Controller

	data    []models.Sample
	legend  []models.LegendEntry
	frame   render.Frame
	updates int
}

// Initialize measures the host, computes the layout and builds the
// drawing layers on surface.
func Initialize(surface render.Surface, cfg Config) (*Handle, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidSurface)
	}
	cfg = cfg.withDefaults()

	layout := ComputeLayout(cfg.ID, cfg.HostWidth, cfg.ViewportHeight)
	if layout.Width <= 0 {
		return nil, fmt.Errorf("%w: host width %g leaves no plot area", ErrInvalidSurface, cfg.HostWidth)
	}
	if err := surface.Init(layout); err != nil {
		return nil, fmt.Errorf("init surface: %w", err)
	}

	h := &Handle{
		cfg:     cfg,
		logger:  cfg.Logger.With("chart", cfg.ID),
		surface: surface,
		layout:  layout,
	}
	h.renderer = render.NewRenderer(surface, layout, cfg.XTickFormat, cfg.Clock)
	h.tooltip = tooltip.New(h.drawFocus)
	h.frame = render.Frame{Layout: layout}

	h.logger.Debug("chart initialized", "width", layout.Width, "height", layout.Height)
	return h, nil
}

// Update replaces the plotted data and redraws. data must be sorted
// ascending by date; every value must be finite and every date set.
//
// The first update draws immediately; later ones animate from whatever
// is on screen when they are called.
func (h *Handle) Update(data []models.Sample) error {
	for i, s := range data {
		if err := validate(s); err != "" {
			return NewPreconditionError(i, s, err)
		}
	}

	series, legend := group(data, h.cfg.Colors)
	if h.cfg.HasLegend {
		h.legend = legend
	} else {
		h.legend = nil
	}

	x, y := scale.ForSamples(data, h.layout.Width, h.layout.Height)

	tr := render.Immediate
	if h.updates > 0 && h.cfg.ShouldAnimate() {
		tr = h.cfg.Transition
	}
	h.frame = h.renderer.Draw(series, x, y, tr)

	h.surface.RemoveOverlays()
	h.surface.BindPointerHandlers(render.Overlay{Width: h.layout.Width, Height: h.layout.Height}, h.tooltip.Handlers())
	// Binding moves a hovered tooltip onto the new scales.
	h.tooltip.Bind(tooltip.Binding{
		Series: series,
		X:      x,
		Y:      y,
		Margin: h.layout.Margin,
	})
	h.frame.Focus = h.tooltip.Focus()

	h.data = append(h.data[:0:0], data...)
	h.updates++

	h.logger.Debug("chart updated",
		"samples", len(data),
		"series", len(series),
		"animated", tr.Animated(),
	)
	return nil
}

// Teardown hides the tooltip and focus indicator and unbinds pointer
// handling.
func (h *Handle) Teardown() {
	h.tooltip.Reset()
	h.surface.RemoveOverlays()
	h.logger.Debug("chart torn down")
}

// Tooltip returns the current tooltip snapshot.
func (h *Handle) Tooltip() models.TooltipState {
	return h.tooltip.State()
}

// Legend returns the legend entries of the last update, or nil when the
// legend is disabled.
func (h *Handle) Legend() []models.LegendEntry {
	return append([]models.LegendEntry(nil), h.legend...)
}

// Frame returns what the last update drew.
func (h *Handle) Frame() render.Frame {
	return h.frame
}

// Layout returns the measured layout.
func (h *Handle) Layout() render.Layout {
	return h.layout
}

// ID returns the host element id.
func (h *Handle) ID() string {
	return h.cfg.ID
}

func (h *Handle) drawFocus(f render.Focus) {
	h.frame.Focus = f
	h.surface.DrawFocusPoint(f)
}

func validate(s models.Sample) string {
	switch {
	case s.Date.IsZero():
		return "date is not set"
	case math.IsNaN(s.Value) || math.IsInf(s.Value, 0):
		return fmt.Sprintf("value %v is not finite", s.Value)
	}
	return ""
}

// group splits data into series by Group in first-seen order. Samples
// without a group form a single series keyed "".
func group(data []models.Sample, colors []string) ([]render.SeriesData, []models.LegendEntry) {
	palette := render.NewPalette(colors...)
	index := make(map[string]int)
	var series []render.SeriesData

	for _, s := range data {
		i, ok := index[s.Group]
		if !ok {
			i = len(series)
			index[s.Group] = i
			series = append(series, render.SeriesData{Key: s.Group, Color: palette.Color(s.Group)})
		}
		series[i].Samples = append(series[i].Samples, s)
	}
	if len(series) == 0 {
		series = []render.SeriesData{{Key: "", Color: palette.Color("")}}
	}

	var legend []models.LegendEntry
	for _, sd := range series {
		if len(sd.Samples) > 0 {
			legend = append(legend, models.LegendEntry{Color: sd.Color, Group: sd.Key})
		}
	}
	return series, legend
}
