package tooltip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
	"github.com/ukaji3/linechart-go/pkg/linechart/scale"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func quarterBinding() Binding {
	samples := []models.Sample{
		{Date: date(2023, 1, 1), Value: 10},
		{Date: date(2023, 2, 1), Value: 20},
		{Date: date(2023, 3, 1), Value: 30},
	}
	x, y := scale.ForSamples(samples, 400, 156)
	return Binding{
		Series: []render.SeriesData{{Key: "", Color: "#2E90FA", Samples: samples}},
		X:      x,
		Y:      y,
		Margin: render.DefaultMargin,
	}
}

func TestControllerStartsHidden(t *testing.T) {
	c := New(nil)
	assert.Equal(t, models.HiddenTooltip(), c.State())
	assert.False(t, c.Focus().Visible)
}

func TestControllerMoveWhileHiddenIsNoop(t *testing.T) {
	c := New(nil)
	c.Bind(quarterBinding())

	c.Move(render.PointerEvent{X: 100})
	assert.Equal(t, models.HiddenTooltip(), c.State())
}

func TestControllerSnapsToNearestSample(t *testing.T) {
	var focus []render.Focus
	c := New(func(f render.Focus) { focus = append(focus, f) })
	b := quarterBinding()
	c.Bind(b)

	c.Enter(render.PointerEvent{})
	require.True(t, c.State().Visible)
	require.Len(t, focus, 1)
	assert.True(t, focus[0].Visible)

	feb := b.X.Map(date(2023, 2, 1))
	c.Move(render.PointerEvent{X: feb + 3, Y: 90})

	st := c.State()
	assert.True(t, st.Visible)
	assert.Equal(t, "1/2/2023", st.Title)
	assert.Equal(t, 20.0, st.Value)
	assert.InDelta(t, feb+58, st.Position.Left, 1e-9)
	assert.InDelta(t, b.Y.Map(20)+16, st.Position.Top, 1e-9)

	f := c.Focus()
	assert.True(t, f.Visible)
	assert.Equal(t, "#2E90FA", f.Fill)
	assert.InDelta(t, feb, f.Center.X, 1e-9)
}

func TestControllerLeave(t *testing.T) {
	tests := []struct {
		name         string
		relatedClass string
		wantVisible  bool
	}{
		{"onto tooltip", "chart-tooltip", true},
		{"onto tooltip with modifiers", "chart-tooltip chart-tooltip--visible", true},
		{"onto page", "page-body", false},
		{"no related element", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			c.Bind(quarterBinding())
			c.Enter(render.PointerEvent{})
			c.Move(render.PointerEvent{X: 10})
			before := c.State()

			c.Leave(render.PointerEvent{RelatedClass: tt.relatedClass})

			assert.Equal(t, tt.wantVisible, c.State().Visible)
			assert.Equal(t, tt.wantVisible, c.Focus().Visible)
			assert.Equal(t, before.Title, c.State().Title)
		})
	}
}

func TestControllerReset(t *testing.T) {
	c := New(nil)
	c.Bind(quarterBinding())
	c.Enter(render.PointerEvent{})
	c.Move(render.PointerEvent{X: 200})

	c.Reset()
	assert.Equal(t, models.HiddenTooltip(), c.State())
	assert.Equal(t, render.Focus{}, c.Focus())
}

func TestControllerRebindMovesToNewScale(t *testing.T) {
	var focus []render.Focus
	c := New(func(f render.Focus) { focus = append(focus, f) })
	b := quarterBinding()
	c.Bind(b)
	c.Enter(render.PointerEvent{})
	c.Move(render.PointerEvent{X: b.X.Map(date(2023, 2, 1))})
	require.Equal(t, "1/2/2023", c.State().Title)

	// Same dates, larger values: the y domain grows and every point moves.
	samples := []models.Sample{
		{Date: date(2023, 1, 1), Value: 10},
		{Date: date(2023, 2, 1), Value: 20},
		{Date: date(2023, 3, 1), Value: 300},
	}
	x, y := scale.ForSamples(samples, 400, 156)
	require.NotEqual(t, b.Y.Map(20), y.Map(20))
	calls := len(focus)
	c.Bind(Binding{
		Series: []render.SeriesData{{Key: "", Color: "#2E90FA", Samples: samples}},
		X:      x,
		Y:      y,
		Margin: render.DefaultMargin,
	})

	st := c.State()
	assert.True(t, st.Visible)
	assert.Equal(t, "1/2/2023", st.Title)
	assert.InDelta(t, y.Map(20)+16, st.Position.Top, 1e-9)
	assert.InDelta(t, x.Map(date(2023, 2, 1))+58, st.Position.Left, 1e-9)

	f := c.Focus()
	assert.True(t, f.Visible)
	assert.InDelta(t, y.Map(20), f.Center.Y, 1e-9)
	require.Len(t, focus, calls+1)
	assert.Equal(t, f, focus[calls])
}

func TestControllerRebindKeepsHiddenState(t *testing.T) {
	c := New(nil)
	b := quarterBinding()
	c.Bind(b)
	c.Enter(render.PointerEvent{})
	c.Move(render.PointerEvent{X: b.X.Map(date(2023, 3, 1))})
	c.Leave(render.PointerEvent{})

	c.Bind(quarterBinding())
	assert.False(t, c.State().Visible)
	assert.False(t, c.Focus().Visible)

	// After a reset nothing is remembered.
	c.Reset()
	c.Bind(quarterBinding())
	assert.Equal(t, models.HiddenTooltip(), c.State())
	assert.Equal(t, render.Focus{}, c.Focus())
}

func TestControllerNoData(t *testing.T) {
	c := New(nil)
	x, y := scale.ForSamples(nil, 400, 156)
	c.Bind(Binding{Series: []render.SeriesData{{Key: ""}}, X: x, Y: y})

	c.Enter(render.PointerEvent{})
	c.Move(render.PointerEvent{X: 200})

	st := c.State()
	assert.True(t, st.Visible)
	assert.Empty(t, st.Title)
}

func TestControllerMultiSeries(t *testing.T) {
	a := []models.Sample{{Date: date(2024, 1, 1), Value: 1}, {Date: date(2024, 1, 10), Value: 2}}
	b := []models.Sample{{Date: date(2024, 1, 5), Value: 50}}
	x := scale.NewTime(date(2024, 1, 1), date(2024, 1, 10), 0, 900)
	y := scale.NewLinear(0, 50, 100, 0)

	c := New(nil)
	c.Bind(Binding{
		Series: []render.SeriesData{
			{Key: "a", Color: "#111", Samples: a},
			{Key: "b", Color: "#222", Samples: b},
		},
		X: x,
		Y: y,
	})
	c.Enter(render.PointerEvent{})

	c.Move(render.PointerEvent{X: x.Map(date(2024, 1, 6))})
	assert.Equal(t, 50.0, c.State().Value)
	assert.Equal(t, "#222", c.Focus().Fill)

	c.Move(render.PointerEvent{X: x.Map(date(2024, 1, 9))})
	assert.Equal(t, 2.0, c.State().Value)
	assert.Equal(t, "#111", c.Focus().Fill)
}

func TestControllerMultiSeriesTieGoesToFirst(t *testing.T) {
	d := date(2024, 1, 5)
	x := scale.NewTime(date(2024, 1, 1), date(2024, 1, 10), 0, 900)

	c := New(nil)
	c.Bind(Binding{
		Series: []render.SeriesData{
			{Key: "a", Color: "#111", Samples: []models.Sample{{Date: d, Value: 1}}},
			{Key: "b", Color: "#222", Samples: []models.Sample{{Date: d, Value: 2}}},
		},
		X: x,
		Y: scale.NewLinear(0, 2, 100, 0),
	})
	c.Enter(render.PointerEvent{})
	c.Move(render.PointerEvent{X: x.Map(d)})

	assert.Equal(t, 1.0, c.State().Value)
}

func TestHandlersRouteEvents(t *testing.T) {
	c := New(nil)
	c.Bind(quarterBinding())
	h := c.Handlers()

	h.Handle(render.PointerEnter, render.PointerEvent{})
	h.Handle(render.PointerMove, render.PointerEvent{X: 399})
	assert.Equal(t, 30.0, c.State().Value)

	h.Handle(render.PointerLeave, render.PointerEvent{})
	assert.False(t, c.State().Visible)
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "9/11/2024", FormatTitle(models.Sample{Date: date(2024, 11, 9)}))
	assert.Equal(t, "31/12/1999", FormatTitle(models.Sample{Date: date(1999, 12, 31)}))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{1234567, "1,234,567"},
		{1234.5, "1,234.5"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}
