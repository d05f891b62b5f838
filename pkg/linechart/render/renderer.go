package render

import (
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/scale"
)

// Tick counts requested from the scales.
const (
	XTickCount = 10
	YTickCount = 3
)

// SeriesData is one series of samples to draw.
type SeriesData struct {
	Key     string
	Color   string
	Samples []models.Sample
}

// Renderer converts samples into axes and paths on a Surface.
//
// It remembers what it drew last so the next animated pass can start from
// the current visual state, including a transition that is still running.
type Renderer struct {
	surface Surface
	layout  Layout
	xFormat func(time.Time) string
	clock   func() time.Time

	// ref is the origin of the x affine maps, fixed at the first draw.
	ref  time.Time
	last *drawState
}

// affine is the pixel mapping px = a*u + b. Both scales are affine, and so
// is any interpolation between two of them.
type affine struct {
	a, b float64
}

func (f affine) at(u float64) float64 {
	return f.a*u + f.b
}

func lerpAffine(f, g affine, p float64) affine {
	return affine{a: Lerp(f.a, g.a, p), b: Lerp(f.b, g.b, p)}
}

// fitAffine returns the affine map through (u0, px0) and (u1, px1).
func fitAffine(u0, px0, u1, px1 float64) affine {
	if u1 == u0 {
		return affine{b: px0}
	}
	a := (px1 - px0) / (u1 - u0)
	return affine{a: a, b: px0 - a*u0}
}

// drawState holds plain values only, so a superseded transition never
// keeps older states reachable.
type drawState struct {
	started time.Time
	tr      Transition

	x, xFrom affine
	y, yFrom affine
	hasFrom  bool
	series   map[string]Series
}

// NewRenderer returns a renderer drawing onto surface. A nil xFormat uses
// time.Time.String and a nil clock uses time.Now.
func NewRenderer(surface Surface, layout Layout, xFormat func(time.Time) string, clock func() time.Time) *Renderer {
	if xFormat == nil {
		xFormat = time.Time.String
	}
	if clock == nil {
		clock = time.Now
	}
	return &Renderer{
		surface: surface,
		layout:  layout,
		xFormat: xFormat,
		clock:   clock,
	}
}

// Draw renders series with the given scales and returns what was drawn.
// Series without samples are skipped, so empty data draws no path.
func (r *Renderer) Draw(series []SeriesData, x scale.Time, y scale.Linear, tr Transition) Frame {
	now := r.clock()
	if r.last == nil {
		r.ref, _ = x.Domain()
	}
	xMap, yMap := r.xAffine(x), yAffine(y)

	xFrom, yFrom, prevSeries, hasFrom := r.current(now)
	if !tr.Animated() {
		hasFrom, prevSeries = false, nil
	}

	frame := Frame{
		Layout: r.layout,
		X:      Axis{Kind: AxisX},
		Y:      Axis{Kind: AxisY},
	}

	hasData := false
	for _, sd := range series {
		if len(sd.Samples) == 0 {
			continue
		}
		hasData = true

		pts := make([]Point, len(sd.Samples))
		for i, s := range sd.Samples {
			pts[i] = Point{X: x.Map(s.Date), Y: y.Map(s.Value)}
		}
		drawn := Series{
			Key:         sd.Key,
			Color:       sd.Color,
			StrokeWidth: StrokeWidth,
			Points:      pts,
		}
		if prev, ok := prevSeries[sd.Key]; ok {
			drawn.From = Resample(prev, len(pts))
		}
		frame.Series = append(frame.Series, drawn)
	}

	if hasData {
		for _, t := range x.Ticks(XTickCount) {
			pos := x.Map(t)
			from := pos
			if hasFrom {
				from = xFrom.at(r.seconds(t))
			}
			frame.X.Ticks = append(frame.X.Ticks, Tick{Pos: pos, From: from, Label: r.xFormat(t)})
		}
		format := y.TickFormat(YTickCount)
		for _, v := range y.Ticks(YTickCount) {
			pos := y.Map(v)
			from := pos
			if hasFrom {
				from = yFrom.at(v)
			}
			frame.Y.Ticks = append(frame.Y.Ticks, Tick{Pos: pos, From: from, Label: format(v)})
		}
	}

	r.surface.DrawAxis(frame.X, tr)
	r.surface.DrawAxis(frame.Y, tr)
	r.surface.DrawPath(frame.Series, tr)

	state := &drawState{
		started: now,
		tr:      tr,
		x:       xMap,
		xFrom:   xFrom,
		y:       yMap,
		yFrom:   yFrom,
		hasFrom: hasFrom,
		series:  make(map[string]Series, len(frame.Series)),
	}
	for _, s := range frame.Series {
		state.series[s.Key] = s
	}
	r.last = state
	return frame
}

// current returns the mappings and point sets as they appear on screen
// at now. ok is false before the first draw.
func (r *Renderer) current(now time.Time) (x, y affine, series map[string][]Point, ok bool) {
	last := r.last
	if last == nil {
		return affine{}, affine{}, nil, false
	}

	p := last.tr.At(now.Sub(last.started))
	series = make(map[string][]Point, len(last.series))
	for key, s := range last.series {
		if p < 1 && s.From != nil {
			series[key] = LerpPoints(s.From, s.Points, p)
		} else {
			series[key] = s.Points
		}
	}

	x, y = last.x, last.y
	if p < 1 && last.hasFrom {
		x = lerpAffine(last.xFrom, last.x, p)
		y = lerpAffine(last.yFrom, last.y, p)
	}
	return x, y, series, true
}

func (r *Renderer) seconds(t time.Time) float64 {
	return t.Sub(r.ref).Seconds()
}

// xAffine expresses x in seconds since the renderer origin.
func (r *Renderer) xAffine(x scale.Time) affine {
	d0, d1 := x.Domain()
	return fitAffine(r.seconds(d0), x.Map(d0), r.seconds(d1), x.Map(d1))
}

func yAffine(y scale.Linear) affine {
	d0, d1 := y.Domain()
	return fitAffine(d0, y.Map(d0), d1, y.Map(d1))
}
