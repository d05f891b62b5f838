package models

import "time"

// Column maps a sample field to the label shown in tabular exports.
type Column struct {
	// Field is the sample field name ("date", "value" or "group").
	Field string `json:"field"`
	// Label is the column header.
	Label string `json:"label"`
}

// DefaultColumns returns the column mapping used when none is configured.
func DefaultColumns() []Column {
	return []Column{
		{Field: "date", Label: "Date"},
		{Field: "value", Label: "Value"},
	}
}

// TableView is the read-only tabular view handed to table exporters.
type TableView struct {
	// Columns is the ordered field to label mapping.
	Columns []Column `json:"columns"`
	// Rows holds the samples currently rendered.
	Rows []Sample `json:"rows"`
}

// ImageMetadata describes a rendered chart for image exporters.
type ImageMetadata struct {
	// Title is the chart title.
	Title string `json:"title"`
	// Filters is the human-readable summary of the active filters.
	Filters string `json:"filters"`
	// GeneratedAt is when the export view was taken.
	GeneratedAt time.Time `json:"generated_at"`
	// ProductName is the name of the product embedding the chart.
	ProductName string `json:"product_name"`
}
