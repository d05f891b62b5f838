package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		start, stop float64
		count       int
		expected    []float64
	}{
		{0, 30, 3, []float64{0, 10, 20, 30}},
		{0, 1, 10, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{0, 1500, 3, []float64{0, 500, 1000, 1500}},
		{0, 7, 3, []float64{0, 2, 4, 6}},
		{1, 1, 3, []float64{1}},
		{30, 0, 3, []float64{30, 20, 10, 0}},
	}

	for _, tt := range tests {
		got := Ticks(tt.start, tt.stop, tt.count)
		assert.InDeltaSlice(t, tt.expected, got, 1e-9, "Ticks(%v, %v, %d)", tt.start, tt.stop, tt.count)
	}
}

func TestTickStep(t *testing.T) {
	assert.Equal(t, 10.0, TickStep(0, 30, 3))
	assert.Equal(t, 500.0, TickStep(0, 1500, 3))
	assert.Equal(t, 0.1, TickStep(0, 1, 10))
	assert.Equal(t, 0.0, TickStep(1, 1, 3))
}

func TestTicksInvalidCount(t *testing.T) {
	assert.Nil(t, Ticks(0, 10, 0))
}
