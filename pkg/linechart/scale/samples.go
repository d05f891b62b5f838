package scale

import (
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// TimeExtent returns the earliest and latest sample dates. ok is false for
// an empty slice.
func TimeExtent(samples []models.Sample) (min, max time.Time, ok bool) {
	for i, s := range samples {
		if i == 0 || s.Date.Before(min) {
			min = s.Date
		}
		if i == 0 || s.Date.After(max) {
			max = s.Date
		}
	}
	return min, max, len(samples) > 0
}

// MaxValue returns the largest sample value, or 0 for an empty slice.
func MaxValue(samples []models.Sample) float64 {
	var max float64
	for i, s := range samples {
		if i == 0 || s.Value > max {
			max = s.Value
		}
	}
	return max
}

// ForSamples builds the two mappings of one render pass: dates onto
// [0, width] and values onto [height, 0] with a zero baseline.
func ForSamples(samples []models.Sample, width, height float64) (Time, Linear) {
	min, max, ok := TimeExtent(samples)
	if !ok {
		min = time.Unix(0, 0).UTC()
		max = min.Add(FallbackSpan)
	}
	x := NewTime(min, max, 0, width)

	top := MaxValue(samples)
	if !(top > 0) {
		top = 1
	}
	y := NewLinear(0, top, height, 0)
	return x, y
}
