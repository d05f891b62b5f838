package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseCubicInOut(t *testing.T) {
	assert.InDelta(t, 0, EaseCubicInOut(0), 1e-12)
	assert.InDelta(t, 0.0625, EaseCubicInOut(0.25), 1e-12)
	assert.InDelta(t, 0.5, EaseCubicInOut(0.5), 1e-12)
	assert.InDelta(t, 0.9375, EaseCubicInOut(0.75), 1e-12)
	assert.InDelta(t, 1, EaseCubicInOut(1), 1e-12)
}

func TestTransitionAt(t *testing.T) {
	tr := DefaultTransition()

	assert.Equal(t, 0.0, tr.At(0))
	assert.Equal(t, 0.0, tr.At(-time.Second))
	assert.InDelta(t, 0.5, tr.At(500*time.Millisecond), 1e-12)
	assert.Equal(t, 1.0, tr.At(time.Second))
	assert.Equal(t, 1.0, tr.At(time.Hour))

	assert.False(t, Immediate.Animated())
	assert.Equal(t, 1.0, Immediate.At(0))
}

func TestTransitionFrames(t *testing.T) {
	frames := DefaultTransition().Frames(10)
	require.Len(t, frames, 11)
	assert.Equal(t, 0.0, frames[0])
	assert.Equal(t, 1.0, frames[10])
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i], frames[i-1])
	}

	linear := Transition{Duration: time.Second}.Frames(4)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, linear)
}

func TestResample(t *testing.T) {
	pts := []Point{{0, 0}, {10, 20}}

	assert.Nil(t, Resample(nil, 3))
	assert.Nil(t, Resample(pts, 0))
	assert.Equal(t, []Point{{0, 0}, {5, 10}, {10, 20}}, Resample(pts, 3))
	assert.Equal(t, []Point{{0, 0}}, Resample(pts, 1))
	assert.Equal(t, []Point{{4, 4}, {4, 4}}, Resample([]Point{{4, 4}}, 2))
}

func TestLerpPoints(t *testing.T) {
	to := []Point{{10, 10}, {20, 20}}

	got := LerpPoints(nil, to, 0.5)
	assert.Equal(t, to, got)
	got[0].X = 99
	assert.Equal(t, 10.0, to[0].X, "LerpPoints must not alias its input")

	from := []Point{{0, 0}, {0, 0}}
	assert.Equal(t, []Point{{5, 5}, {10, 10}}, LerpPoints(from, to, 0.5))

	// A longer previous state is resampled to the new length.
	from = []Point{{0, 0}, {0, 0}, {0, 0}}
	assert.Equal(t, []Point{{10, 10}, {20, 20}}, LerpPoints(from, to, 1))
}
