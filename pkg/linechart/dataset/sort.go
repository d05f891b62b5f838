package dataset

import (
	"sort"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Sort orders samples ascending by date in place. Samples sharing a date
// keep their input order.
func Sort(samples []models.Sample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})
}
