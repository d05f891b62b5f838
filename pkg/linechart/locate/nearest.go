// Package locate finds the sample closest to a pointer position.
//
// Every function here assumes samples are sorted ascending by date. That
// order is never checked; unsorted input gives arbitrary results.
package locate

import (
	"sort"
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// BisectLeft returns the leftmost index i in [lo, len(samples)] such that
// every sample before i is dated strictly before t.
func BisectLeft(samples []models.Sample, t time.Time, lo int) int {
	if lo < 0 {
		lo = 0
	}
	if lo > len(samples) {
		return len(samples)
	}
	return lo + sort.Search(len(samples)-lo, func(i int) bool {
		return !samples[lo+i].Date.Before(t)
	})
}

// Nearest returns the index of the sample dated closest to t, or -1 when
// samples is empty. Queries outside the data clamp to the first or last
// sample, and an exact midpoint resolves to the earlier sample.
func Nearest(samples []models.Sample, t time.Time) int {
	n := len(samples)
	if n == 0 {
		return -1
	}
	i := BisectLeft(samples, t, 0)
	switch {
	case i == 0:
		return 0
	case i == n:
		return BisectLeft(samples, samples[n-1].Date, 0)
	}
	before := t.Sub(samples[i-1].Date)
	after := samples[i].Date.Sub(t)
	if before <= after {
		// Step back to the first of any samples sharing that date.
		return BisectLeft(samples, samples[i-1].Date, 0)
	}
	return i
}
