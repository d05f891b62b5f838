// Package models defines data structures shared by the chart engine and
// its export collaborators.
package models

import "time"

// Sample is a single dated observation plotted on the chart.
type Sample struct {
	// Date is the point in time of the observation.
	Date time.Time `json:"date"`
	// Value is the observed value. It must be finite.
	Value float64 `json:"value"`
	// Group is the series key in multi-series mode (empty for a single series).
	Group string `json:"group,omitempty"`
}
