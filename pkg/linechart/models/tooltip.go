package models

// Position is a pixel offset relative to the chart container.
type Position struct {
	// Top is the vertical offset in pixels.
	Top float64 `json:"top"`
	// Left is the horizontal offset in pixels.
	Left float64 `json:"left"`
}

// TooltipState is a snapshot of the hover tooltip.
//
// It is never mutated in place; every transition produces a new value.
type TooltipState struct {
	// Visible reports whether the tooltip is shown.
	Visible bool `json:"visible"`
	// Position is where the tooltip is anchored, snapped to a data point.
	Position Position `json:"position"`
	// Title is the formatted date of the hovered sample.
	Title string `json:"title"`
	// Value is the value of the hovered sample.
	Value float64 `json:"value"`
}

// HiddenTooltip returns the state a tooltip starts in.
func HiddenTooltip() TooltipState {
	return TooltipState{}
}
