package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// dateNumFmt is the built-in Excel short date format (m/d/yyyy).
const dateNumFmt = 14

// TableOptions configures WriteTable.
type TableOptions struct {
	// SheetName defaults to "Data".
	SheetName string
	// Chart adds a native line chart of the value column over the date
	// column.
	Chart bool
	// ChartTitle is the title of the added chart.
	ChartTitle string
}

// DefaultTableOptions returns default table export options.
func DefaultTableOptions() TableOptions {
	return TableOptions{SheetName: "Data"}
}

// WriteTable writes view as a single-sheet workbook: a bold header row of
// column labels followed by one row per sample.
func WriteTable(w io.Writer, view models.TableView, opts TableOptions) error {
	if opts.SheetName == "" {
		opts.SheetName = DefaultTableOptions().SheetName
	}
	for _, c := range view.Columns {
		if !knownField(c.Field) {
			return fmt.Errorf("%w: %q", ErrUnknownField, c.Field)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		return err
	}

	for col, c := range view.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, c.Label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for row, s := range view.Rows {
		for col, c := range view.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, fieldValue(s, c.Field)); err != nil {
				return fmt.Errorf("row %d: %w", row+1, err)
			}
			if c.Field == "date" {
				if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
					return err
				}
			}
		}
	}

	if len(view.Columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(view.Columns))
		if err := f.SetColWidth(sheet, "A", last, 14); err != nil {
			return err
		}
	}

	if opts.Chart && len(view.Rows) > 0 {
		if err := addLineChart(f, sheet, view, opts.ChartTitle); err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	return f.Write(w)
}

// addLineChart places a line chart to the right of the table.
func addLineChart(f *excelize.File, sheet string, view models.TableView, title string) error {
	dateCol, valueCol := -1, -1
	for i, c := range view.Columns {
		switch c.Field {
		case "date":
			dateCol = i + 1
		case "value":
			valueCol = i + 1
		}
	}
	if dateCol < 0 || valueCol < 0 {
		return nil
	}

	lastRow := len(view.Rows) + 1
	dates, _ := excelize.ColumnNumberToName(dateCol)
	values, _ := excelize.ColumnNumberToName(valueCol)
	anchor, _ := excelize.CoordinatesToCellName(len(view.Columns)+2, 1)

	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, values),
			Categories: fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, dates, dates, lastRow),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, values, values, lastRow),
			Line:       excelize.ChartLine{Smooth: true},
		}},
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}

func knownField(field string) bool {
	switch field {
	case "date", "value", "group":
		return true
	}
	return false
}

func fieldValue(s models.Sample, field string) interface{} {
	switch field {
	case "date":
		return s.Date
	case "value":
		return s.Value
	default:
		return s.Group
	}
}
