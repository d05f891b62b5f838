package models

// LegendEntry pairs a series group with the color it is drawn in.
type LegendEntry struct {
	// Color is the series stroke color (e.g. "#2E90FA").
	Color string `json:"color"`
	// Group is the series key.
	Group string `json:"group"`
}
