package export

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

// HeaderHeight is the band above the plot holding the image metadata.
const HeaderHeight = 48

// ImageOptions configures WriteImage.
type ImageOptions struct {
	// Background is the canvas color. Defaults to white.
	Background string
	// TextColor is used for metadata and tick labels.
	TextColor string
	// TimeLayout formats the generation time. Defaults to
	// "2006-01-02 15:04".
	TimeLayout string
}

// DefaultImageOptions returns default image export options.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Background: "#ffffff",
		TextColor:  "#475467",
		TimeLayout: "2006-01-02 15:04",
	}
}

// WriteImage rasterises frame as a PNG with a metadata header.
func WriteImage(w io.Writer, frame render.Frame, meta models.ImageMetadata, opts ImageOptions) error {
	def := DefaultImageOptions()
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.TextColor == "" {
		opts.TextColor = def.TextColor
	}
	if opts.TimeLayout == "" {
		opts.TimeLayout = def.TimeLayout
	}

	l := frame.Layout
	width := int(math.Ceil(l.OuterWidth()))
	height := int(math.Ceil(l.OuterHeight())) + HeaderHeight
	if width <= 0 || l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: empty layout", ErrUnsupportedSurface)
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor(opts.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	drawHeader(dc, meta, opts)

	dc.Push()
	dc.Translate(l.Margin.Left, HeaderHeight+l.Margin.Top)
	drawAxes(dc, frame, opts.TextColor)
	for _, s := range frame.Series {
		drawSeries(dc, s)
	}
	if frame.Focus.Visible {
		drawFocus(dc, frame.Focus)
	}
	dc.Pop()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func drawHeader(dc *gg.Context, meta models.ImageMetadata, opts ImageOptions) {
	dc.SetHexColor(opts.TextColor)
	dc.DrawString(meta.Title, 8, 14)
	dc.DrawString("Filters: "+meta.Filters, 8, 28)

	footer := meta.GeneratedAt.Format(opts.TimeLayout)
	if meta.ProductName != "" {
		footer = meta.ProductName + " - " + footer
	}
	dc.DrawString(footer, 8, 42)
}

func drawAxes(dc *gg.Context, frame render.Frame, color string) {
	l := frame.Layout
	dc.SetHexColor(color)
	dc.SetLineWidth(1)

	dc.DrawLine(0, l.Height, l.Width, l.Height)
	dc.Stroke()
	for _, t := range frame.X.Ticks {
		dc.DrawStringAnchored(t.Label, t.Pos, l.Height+9, 0.5, 1)
	}
	for _, t := range frame.Y.Ticks {
		dc.DrawStringAnchored(t.Label, -9, t.Pos, 1, 0.35)
	}
}

func drawSeries(dc *gg.Context, s render.Series) {
	for _, cmd := range s.Path() {
		p := cmd.Points
		switch cmd.Kind {
		case render.MoveTo:
			dc.MoveTo(p[0].X, p[0].Y)
		case render.LineTo:
			dc.LineTo(p[0].X, p[0].Y)
		case render.CurveTo:
			dc.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		case render.Close:
			dc.ClosePath()
		}
	}
	dc.SetHexColor(s.Color)
	dc.SetLineWidth(s.StrokeWidth)
	dc.Stroke()

	// A lone sample has no length to stroke.
	if len(s.Points) == 1 {
		dc.DrawCircle(s.Points[0].X, s.Points[0].Y, s.StrokeWidth)
		dc.Fill()
	}
}

func drawFocus(dc *gg.Context, f render.Focus) {
	dc.DrawCircle(f.Center.X, f.Center.Y, render.FocusRadius)
	dc.SetHexColor(render.FocusStroke)
	dc.SetLineWidth(render.FocusStrokeWidth)
	dc.StrokePreserve()
	dc.SetHexColor(f.Fill)
	dc.Fill()
}
