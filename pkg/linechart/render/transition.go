package render

import "time"

// DefaultDuration is how long data-change transitions run.
const DefaultDuration = 1000 * time.Millisecond

// Transition describes how a redraw animates from the previous state.
type Transition struct {
	Duration time.Duration
	// Ease maps linear progress in [0, 1] to eased progress. Nil means
	// linear.
	Ease func(float64) float64
}

// Immediate draws without animation.
var Immediate = Transition{}

// DefaultTransition returns the transition used for data updates.
func DefaultTransition() Transition {
	return Transition{Duration: DefaultDuration, Ease: EaseCubicInOut}
}

// Animated reports whether the transition takes any time.
func (t Transition) Animated() bool {
	return t.Duration > 0
}

// At returns the eased progress after elapsed time, clamped to [0, 1].
func (t Transition) At(elapsed time.Duration) float64 {
	if !t.Animated() || elapsed >= t.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return t.ease(float64(elapsed) / float64(t.Duration))
}

// Frames returns n+1 eased progress values sampled evenly in time.
func (t Transition) Frames(n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = t.ease(float64(i) / float64(n))
	}
	return out
}

func (t Transition) ease(p float64) float64 {
	if t.Ease == nil {
		return p
	}
	return t.Ease(p)
}

// EaseCubicInOut accelerates then decelerates.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoints interpolates between two point sequences of equal length.
// from is resampled first when the lengths differ.
func LerpPoints(from, to []Point, t float64) []Point {
	if len(from) != len(to) {
		from = Resample(from, len(to))
	}
	if from == nil {
		return append([]Point(nil), to...)
	}
	out := make([]Point, len(to))
	for i := range to {
		out[i] = Point{X: Lerp(from[i].X, to[i].X, t), Y: Lerp(from[i].Y, to[i].Y, t)}
	}
	return out
}

// Resample returns n points spread evenly by index along pts, linearly
// interpolating between neighbours. It returns nil when either side is
// empty.
func Resample(pts []Point, n int) []Point {
	if n <= 0 || len(pts) == 0 {
		return nil
	}
	out := make([]Point, n)
	if len(pts) == 1 || n == 1 {
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}
	last := float64(len(pts) - 1)
	for i := range out {
		pos := float64(i) * last / float64(n-1)
		lo := int(pos)
		if lo >= len(pts)-1 {
			out[i] = pts[len(pts)-1]
			continue
		}
		f := pos - float64(lo)
		out[i] = Point{
			X: Lerp(pts[lo].X, pts[lo+1].X, f),
			Y: Lerp(pts[lo].Y, pts[lo+1].Y, f),
		}
	}
	return out
}
