// Package scale maps chart domains (dates and values) onto pixel ranges.
package scale

import (
	"math"

	mmscale "github.com/aclements/go-moremath/scale"
)

// Linear is a continuous mapping from a numeric domain onto a pixel range.
//
// The range may be inverted (r0 > r1), which is how the value axis draws
// larger values higher up.
type Linear struct {
	norm   mmscale.Linear
	r0, r1 float64
}

// NewLinear returns a linear mapping of [d0, d1] onto [r0, r1].
//
// A zero-width or non-finite domain is replaced by [d0, d0+1] so Map never
// divides by zero.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	if !isFinite(d0) {
		d0 = 0
	}
	if !isFinite(d1) || d1 == d0 {
		d1 = d0 + 1
	}
	return Linear{
		norm: mmscale.Linear{Min: d0, Max: d1},
		r0:   r0,
		r1:   r1,
	}
}

// Map returns the pixel position of v.
func (s Linear) Map(v float64) float64 {
	return s.r0 + s.norm.Map(v)*(s.r1-s.r0)
}

// Invert returns the domain value at pixel position px.
func (s Linear) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.norm.Min
	}
	f := (px - s.r0) / (s.r1 - s.r0)
	return s.norm.Min + f*(s.norm.Max-s.norm.Min)
}

// Domain returns the domain bounds.
func (s Linear) Domain() (float64, float64) {
	return s.norm.Min, s.norm.Max
}

// Range returns the pixel range bounds.
func (s Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Ticks returns roughly count evenly spaced "nice" values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.norm.Min, s.norm.Max, count)
}

// TickFormat returns an SI-suffix formatter suited to Ticks(count).
func (s Linear) TickFormat(count int) func(float64) string {
	d0, d1 := s.Domain()
	step := TickStep(d0, d1, count)
	return SIFormatter(step, math.Max(math.Abs(d0), math.Abs(d1)))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
