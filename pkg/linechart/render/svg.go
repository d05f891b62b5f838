package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidLayout indicates a layout with a non-positive plot area.
var ErrInvalidLayout = errors.New("invalid layout")

// animationFrames is the number of keyframe intervals written for animated
// attributes.
const animationFrames = 10

// SVGSurface is a Surface building an in-memory SVG tree.
//
// Its structure is:
//
//	svg#<id>
//	  g (translated by the margins)
//	    g.x-axis / g.y-axis      tick groups with text.chart_tick_text
//	    g.chart-container        one path.line per series
//	    g.focus > circle         hovered sample marker
//	    rect.event-overlay       pointer capture
type SVGSurface struct {
	layout Layout

	root      *Node
	plot      *Node
	xAxis     *Node
	yAxis     *Node
	container *Node
	focus     *Node
}

// NewSVGSurface returns an uninitialised surface.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{}
}

// Init builds the drawing layers. Calling it again discards the old tree.
func (s *SVGSurface) Init(layout Layout) error {
	if layout.Width <= 0 || layout.Height <= 0 {
		return fmt.Errorf("%w: plot area %gx%g", ErrInvalidLayout, layout.Width, layout.Height)
	}
	s.layout = layout

	s.root = newNode("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"id", layout.ID,
		"width", formatNumber(layout.OuterWidth()),
		"height", formatNumber(layout.OuterHeight()),
	)
	s.plot = s.root.Append(newNode("g",
		"transform", translate(layout.Margin.Left, layout.Margin.Top),
	))
	s.xAxis = s.plot.Append(newNode("g",
		"class", AxisX.Class(),
		"transform", translate(0, layout.Height),
		"fill", "none",
		"font-size", "10",
		"font-family", "sans-serif",
		"text-anchor", "middle",
	))
	s.yAxis = s.plot.Append(newNode("g",
		"class", AxisY.Class(),
		"transform", translate(0, 0),
		"fill", "none",
		"font-size", "10",
		"font-family", "sans-serif",
		"text-anchor", "end",
	))
	s.container = s.plot.Append(newNode("g", "class", "chart-container"))
	focus := s.plot.Append(newNode("g", "class", "focus"))
	s.focus = focus.Append(newNode("circle",
		"stroke", FocusStroke,
		"r", formatNumber(FocusRadius),
		"stroke-width", formatNumber(FocusStrokeWidth),
		"style", "opacity: 0",
	))
	return nil
}

// Layout returns the layout passed to Init.
func (s *SVGSurface) Layout() Layout {
	return s.layout
}

// Root returns the root svg element, or nil before Init.
func (s *SVGSurface) Root() *Node {
	return s.root
}

// DrawAxis replaces the ticks of one axis group.
func (s *SVGSurface) DrawAxis(axis Axis, tr Transition) {
	group := s.xAxis
	if axis.Kind == AxisY {
		group = s.yAxis
	}
	if group == nil {
		return
	}
	group.Children = nil

	for _, tick := range axis.Ticks {
		g := group.Append(newNode("g", "class", "tick", "opacity", "1"))
		text := newNode("text", "class", "chart_tick_text", "fill", "currentColor")
		text.Text = tick.Label

		var at string
		if axis.Kind == AxisY {
			at = translate(0, tick.Pos)
			text.Set("x", "-9").Set("dy", "0.32em")
		} else {
			at = translate(tick.Pos, 0)
			text.Set("y", "9").Set("dy", "0.71em")
		}
		g.Set("transform", at)
		g.Append(text)

		if tr.Animated() && tick.From != tick.Pos {
			values := make([]string, 0, animationFrames+1)
			for _, p := range tr.Frames(animationFrames) {
				v := Lerp(tick.From, tick.Pos, p)
				if axis.Kind == AxisY {
					values = append(values, formatNumber(0)+","+formatNumber(v))
				} else {
					values = append(values, formatNumber(v)+","+formatNumber(0))
				}
			}
			g.Append(newNode("animateTransform",
				"attributeName", "transform",
				"type", "translate",
				"values", strings.Join(values, ";"),
				"dur", duration(tr),
				"fill", "freeze",
			))
		}
	}
}

// DrawPath replaces the series paths, reusing the element of a series key
// that is still present.
func (s *SVGSurface) DrawPath(series []Series, tr Transition) {
	if s.container == nil {
		return
	}
	existing := make(map[string]*Node, len(s.container.Children))
	for _, c := range s.container.Children {
		if key, ok := c.Attr("data-series"); ok {
			existing[key] = c
		}
	}

	s.container.Children = nil
	for _, sr := range series {
		path, ok := existing[sr.Key]
		if !ok {
			path = newNode("path", "class", "line", "data-series", sr.Key)
		}
		path.Children = nil
		path.Set("fill", "none").
			Set("stroke", sr.Color).
			Set("stroke-width", formatNumber(sr.StrokeWidth)).
			Set("d", PathData(sr.Path()))

		if tr.Animated() && len(sr.From) > 0 {
			values := make([]string, 0, animationFrames+1)
			for _, p := range tr.Frames(animationFrames) {
				values = append(values, PathData(CatmullRom(LerpPoints(sr.From, sr.Points, p), CatmullRomAlpha)))
			}
			path.Append(newNode("animate",
				"attributeName", "d",
				"values", strings.Join(values, ";"),
				"dur", duration(tr),
				"fill", "freeze",
			))
		}
		s.container.Append(path)
	}
}

// DrawFocusPoint moves the focus circle and sets its visibility.
func (s *SVGSurface) DrawFocusPoint(focus Focus) {
	if s.focus == nil {
		return
	}
	opacity := "0"
	if focus.Visible {
		opacity = "1"
	}
	s.focus.Set("cx", formatNumber(focus.Center.X)).
		Set("cy", formatNumber(focus.Center.Y)).
		Set("style", "opacity: "+opacity)
	if focus.Fill != "" {
		s.focus.Set("fill", focus.Fill)
	}
}

// RemoveOverlays drops every event overlay.
func (s *SVGSurface) RemoveOverlays() {
	if s.plot == nil {
		return
	}
	s.plot.RemoveAll("event-overlay")
}

// BindPointerHandlers appends a transparent overlay bound to handlers.
func (s *SVGSurface) BindPointerHandlers(overlay Overlay, handlers PointerHandlers) {
	if s.plot == nil {
		return
	}
	rect := newNode("rect",
		"class", "event-overlay",
		"style", "fill: none; pointer-events: all",
		"width", formatNumber(overlay.Width),
		"height", formatNumber(overlay.Height),
	)
	h := handlers
	rect.handlers = &h
	s.plot.Append(rect)
}

// Dispatch delivers a pointer event to every bound overlay and reports
// whether any overlay received it.
func (s *SVGSurface) Dispatch(kind EventKind, ev PointerEvent) bool {
	if s.plot == nil {
		return false
	}
	delivered := false
	for _, o := range s.plot.SelectAll("event-overlay") {
		if o.handlers == nil {
			continue
		}
		o.handlers.Handle(kind, ev)
		delivered = true
	}
	return delivered
}

// WriteTo serialises the tree as an SVG document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	if s.root == nil {
		return 0, fmt.Errorf("%w: surface not initialised", ErrInvalidLayout)
	}
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	if err := s.root.encode(enc); err != nil {
		return cw.n, err
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func translate(x, y float64) string {
	return "translate(" + formatNumber(x) + "," + formatNumber(y) + ")"
}

func duration(tr Transition) string {
	return fmt.Sprintf("%dms", tr.Duration.Milliseconds())
}
