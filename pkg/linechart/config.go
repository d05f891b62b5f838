package linechart

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

// Plot heights for short and regular viewports.
const (
	CompactHeight         = 106
	RegularHeight         = 156
	CompactBreakpoint     = 200
	defaultHostWidth      = 640
	defaultViewportHeight = 800
)

// Config configures a chart.
type Config struct {
	// ID identifies the host element. If empty a random "chart-<uuid>" id
	// is assigned.
	ID string
	// HostWidth is the measured width of the host element in pixels.
	HostWidth float64
	// ViewportHeight selects the plot height: CompactHeight below
	// CompactBreakpoint, RegularHeight otherwise.
	ViewportHeight float64
	// Colors is the series palette. Defaults to render.DefaultColors.
	Colors []string
	// XTickFormat formats x-axis tick labels. Defaults to time.Time.String.
	XTickFormat func(time.Time) string
	// Columns maps sample fields to table export labels. Defaults to
	// models.DefaultColumns.
	Columns []models.Column
	// Title, Filters and ProductName feed the image export metadata.
	Title       string
	Filters     map[string][]string
	ProductName string
	// HasLegend enables legend entries.
	HasLegend bool
	// Animate specifies whether updates after the first are animated.
	// If nil, defaults to true.
	Animate *bool
	// Transition used for animated updates. A zero value means
	// render.DefaultTransition.
	Transition render.Transition
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *slog.Logger
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{
		HostWidth:      defaultHostWidth,
		ViewportHeight: defaultViewportHeight,
	}
}

// ShouldAnimate returns whether updates after the first are animated.
func (c Config) ShouldAnimate() bool {
	if c.Animate != nil {
		return *c.Animate
	}
	return true
}

// withDefaults fills every unset field.
func (c Config) withDefaults() Config {
	if c.ID == "" {
		c.ID = "chart-" + uuid.NewString()
	}
	if len(c.Colors) == 0 {
		c.Colors = render.DefaultColors
	}
	if len(c.Columns) == 0 {
		c.Columns = models.DefaultColumns()
	}
	if c.Transition.Duration <= 0 {
		c.Transition = render.DefaultTransition()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// ComputeLayout returns the plot geometry for a host of the given width
// inside a viewport of the given height.
func ComputeLayout(id string, hostWidth, viewportHeight float64) render.Layout {
	height := float64(RegularHeight)
	if viewportHeight < CompactBreakpoint {
		height = CompactHeight
	}
	m := render.DefaultMargin
	return render.Layout{
		ID:     id,
		Width:  hostWidth - m.Left,
		Height: height,
		Margin: m,
	}
}
