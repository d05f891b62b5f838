package scale

import (
	"time"

	mmscale "github.com/aclements/go-moremath/scale"
)

// FallbackSpan is the domain width used when the data spans no time at all.
const FallbackSpan = 24 * time.Hour

// Time is a continuous mapping from a time domain onto a pixel range.
type Time struct {
	min, max time.Time
	// norm works in seconds elapsed since min.
	norm   mmscale.Linear
	r0, r1 float64
}

// NewTime returns a linear mapping of [min, max] onto [r0, r1].
//
// When min and max coincide the domain is widened to FallbackSpan centred
// on that instant, so a lone sample lands in the middle of the range.
func NewTime(min, max time.Time, r0, r1 float64) Time {
	if max.Before(min) {
		min, max = max, min
	}
	if !max.After(min) {
		min = min.Add(-FallbackSpan / 2)
		max = min.Add(FallbackSpan)
	}
	return Time{
		min:  min,
		max:  max,
		norm: mmscale.Linear{Min: 0, Max: max.Sub(min).Seconds()},
		r0:   r0,
		r1:   r1,
	}
}

// Map returns the pixel position of t.
func (s Time) Map(t time.Time) float64 {
	return s.r0 + s.norm.Map(t.Sub(s.min).Seconds())*(s.r1-s.r0)
}

// Invert returns the instant at pixel position px.
func (s Time) Invert(px float64) time.Time {
	if s.r0 == s.r1 {
		return s.min
	}
	f := (px - s.r0) / (s.r1 - s.r0)
	secs := s.norm.Min + f*(s.norm.Max-s.norm.Min)
	return s.min.Add(time.Duration(secs * float64(time.Second)))
}

// Domain returns the domain bounds.
func (s Time) Domain() (time.Time, time.Time) {
	return s.min, s.max
}

// Range returns the pixel range bounds.
func (s Time) Range() (float64, float64) {
	return s.r0, s.r1
}

// Ticks returns roughly count instants aligned to calendar boundaries.
func (s Time) Ticks(count int) []time.Time {
	return TimeTicks(s.min, s.max, count)
}
