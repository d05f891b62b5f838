package export

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleView() models.TableView {
	return models.TableView{
		Columns: models.DefaultColumns(),
		Rows: []models.Sample{
			{Date: date(2023, 1, 1), Value: 10},
			{Date: date(2023, 2, 1), Value: 20},
			{Date: date(2023, 3, 1), Value: 30.5},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleView(), TableOptions{Chart: true, ChartTitle: "Revenue"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())

	rows, err := f.GetRows("Data", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Value"}, rows[0])
	assert.Equal(t, "30.5", rows[3][1])

	serial, err := f.GetCellValue("Data", "A2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "44927", serial)

	styleID, err := f.GetCellStyle("Data", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	styleID, err = f.GetCellStyle("Data", "A2")
	require.NoError(t, err)
	style, err = f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Equal(t, dateNumFmt, style.NumFmt)
}

func TestWriteTableCustomColumns(t *testing.T) {
	view := sampleView()
	view.Columns = []models.Column{{Field: "value", Label: "Amount"}, {Field: "group", Label: "Region"}}
	view.Rows[0].Group = "EU"

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, view, TableOptions{SheetName: "Export"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Export")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount", "Region"}, rows[0])
	assert.Equal(t, []string{"10", "EU"}, rows[1])
}

func TestWriteTableUnknownField(t *testing.T) {
	view := sampleView()
	view.Columns = append(view.Columns, models.Column{Field: "colour", Label: "Colour"})

	err := WriteTable(&bytes.Buffer{}, view, DefaultTableOptions())
	assert.ErrorIs(t, err, ErrUnknownField)
}

func testFrame() render.Frame {
	layout := render.Layout{ID: "c", Width: 400, Height: 156, Margin: render.DefaultMargin}
	return render.Frame{
		Layout: layout,
		X:      render.Axis{Kind: render.AxisX, Ticks: []render.Tick{{Pos: 0, Label: "Jan"}, {Pos: 400, Label: "Mar"}}},
		Y:      render.Axis{Kind: render.AxisY, Ticks: []render.Tick{{Pos: 156, Label: "0"}, {Pos: 0, Label: "30"}}},
		Series: []render.Series{
			{Color: "#2E90FA", StrokeWidth: render.StrokeWidth, Points: []render.Point{{X: 0, Y: 100}, {X: 200, Y: 50}, {X: 400, Y: 0}}},
			{Color: "#F04438", StrokeWidth: render.StrokeWidth, Points: []render.Point{{X: 100, Y: 100}}},
		},
		Focus: render.Focus{Visible: true, Center: render.Point{X: 200, Y: 50}, Fill: "#2E90FA"},
	}
}

func TestWriteImage(t *testing.T) {
	meta := models.ImageMetadata{
		Title:       "Revenue",
		Filters:     "None",
		GeneratedAt: date(2024, 6, 1),
		ProductName: "Dashboard",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteImage(&buf, testFrame(), meta, ImageOptions{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 458, b.Dx())
	assert.Equal(t, 200+HeaderHeight, b.Dy())

	// The focus circle is filled with the series color.
	r, g, bl, _ := img.At(58+200, HeaderHeight+16+50).RGBA()
	assert.Equal(t, [3]uint32{0x2E, 0x90, 0xFA}, [3]uint32{r >> 8, g >> 8, bl >> 8})
}

func TestWriteImageEmptyLayout(t *testing.T) {
	err := WriteImage(&bytes.Buffer{}, render.Frame{}, models.ImageMetadata{}, DefaultImageOptions())
	assert.ErrorIs(t, err, ErrUnsupportedSurface)
}

func TestWriteSVG(t *testing.T) {
	s := render.NewSVGSurface()
	require.NoError(t, s.Init(testFrame().Layout))

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s))
	assert.Contains(t, buf.String(), `<svg xmlns="http://www.w3.org/2000/svg" id="c"`)
}

type opaqueSurface struct{ render.Surface }

func TestWriteSVGUnsupported(t *testing.T) {
	err := WriteSVG(&bytes.Buffer{}, opaqueSurface{})
	assert.ErrorIs(t, err, ErrUnsupportedSurface)
}
