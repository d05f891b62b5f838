package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Options configures loading.
type Options struct {
	// Format overrides the format implied by the file extension.
	Format Format
	// Sheet is the xlsx sheet to read. Defaults to the first sheet.
	Sheet string
	// Columns maps sample fields to header labels in xlsx input. Headers
	// also match the field name itself, case-insensitively. Defaults to
	// models.DefaultColumns.
	Columns []models.Column
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{Columns: models.DefaultColumns()}
}

// FromXLSX reads samples from a workbook. The first non-empty row of the
// data region is the header; every later non-empty row is one sample.
// Date cells may hold Excel serial dates or date strings.
func FromXLSX(r io.Reader, opts Options) ([]models.Sample, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return parseRows(rows, opts.Columns)
}

func parseRows(rows [][]string, columns []models.Column) ([]models.Sample, error) {
	minRow, maxRow, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}

	idx := headerIndex(rows[minRow], minCol, columns)
	dateCol, ok := idx["date"]
	if !ok {
		return nil, fmt.Errorf("%w: date", ErrMissingColumn)
	}
	valueCol, ok := idx["value"]
	if !ok {
		return nil, fmt.Errorf("%w: value", ErrMissingColumn)
	}
	groupCol, hasGroup := idx["group"]

	var samples []models.Sample
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		if isEmptyRow(row) {
			continue
		}
		n := len(samples)

		d, err := parseCellDate(cell(row, dateCol))
		if err != nil {
			return nil, recordError(n, "row %d: %v", rowIdx+1, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, valueCol)), 64)
		if err != nil {
			return nil, recordError(n, "row %d: value %q is not a number", rowIdx+1, cell(row, valueCol))
		}
		s := models.Sample{Date: d, Value: v}
		if hasGroup {
			s.Group = cell(row, groupCol)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// headerIndex maps each field to the column of its header cell.
func headerIndex(header []string, minCol int, columns []models.Column) map[string]int {
	labels := map[string]string{
		"date":  "date",
		"value": "value",
		"group": "group",
	}
	for _, c := range columns {
		labels[strings.ToLower(c.Label)] = c.Field
	}

	idx := make(map[string]int)
	for col := minCol; col < len(header); col++ {
		field, ok := labels[strings.ToLower(strings.TrimSpace(header[col]))]
		if !ok {
			continue
		}
		if _, seen := idx[field]; !seen {
			idx[field] = col
		}
	}
	return idx
}

// parseCellDate accepts an Excel serial date or a date string.
func parseCellDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}
	return ParseDate(s)
}

// findDataBounds finds the bounding box of non-empty cells. minRow is -1
// for an empty sheet.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, c := range row {
			if c == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
