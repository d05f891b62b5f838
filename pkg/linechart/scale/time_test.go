package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeMapAndInvert(t *testing.T) {
	x := NewTime(date(2023, 1, 1), date(2023, 3, 1), 0, 590)

	assert.InDelta(t, 0, x.Map(date(2023, 1, 1)), 1e-9)
	assert.InDelta(t, 590, x.Map(date(2023, 3, 1)), 1e-9)

	feb := x.Map(date(2023, 2, 1))
	assert.InDelta(t, 590*31.0/59.0, feb, 1e-9)
	assert.WithinDuration(t, date(2023, 2, 1), x.Invert(feb), time.Millisecond)
}

func TestForSamplesDomain(t *testing.T) {
	samples := []models.Sample{
		{Date: date(2023, 1, 1), Value: 10},
		{Date: date(2023, 2, 1), Value: 20},
		{Date: date(2023, 3, 1), Value: 30},
	}

	x, y := ForSamples(samples, 500, 156)

	d0, d1 := x.Domain()
	assert.True(t, d0.Equal(date(2023, 1, 1)))
	assert.True(t, d1.Equal(date(2023, 3, 1)))
	r0, r1 := x.Range()
	assert.Equal(t, [2]float64{0, 500}, [2]float64{r0, r1})

	v0, v1 := y.Domain()
	assert.Equal(t, [2]float64{0, 30}, [2]float64{v0, v1})
	r0, r1 = y.Range()
	assert.Equal(t, [2]float64{156, 0}, [2]float64{r0, r1})
}

func TestForSamplesSinglePoint(t *testing.T) {
	samples := []models.Sample{{Date: date(2023, 5, 4), Value: 7}}

	x, y := ForSamples(samples, 400, 156)

	px := x.Map(samples[0].Date)
	assert.InDelta(t, 200, px, 1e-9)
	assert.False(t, math.IsNaN(y.Map(7)))
	assert.InDelta(t, 0, y.Map(7), 1e-9)
}

func TestForSamplesEmpty(t *testing.T) {
	x, y := ForSamples(nil, 400, 156)

	d0, d1 := x.Domain()
	assert.Equal(t, FallbackSpan, d1.Sub(d0))
	assert.False(t, math.IsNaN(x.Map(d0)))
	assert.InDelta(t, 156, y.Map(0), 1e-9)
}

func TestForSamplesAllZero(t *testing.T) {
	samples := []models.Sample{
		{Date: date(2023, 1, 1)},
		{Date: date(2023, 1, 2)},
	}
	_, y := ForSamples(samples, 400, 156)
	assert.InDelta(t, 156, y.Map(0), 1e-9)
}

func TestTimeTicksMonthly(t *testing.T) {
	ticks := TimeTicks(date(2023, 1, 1), date(2023, 12, 31), 10)
	require.NotEmpty(t, ticks)

	// A year over ten ticks lands on the monthly interval.
	assert.Len(t, ticks, 12)
	for i, tick := range ticks {
		assert.Equal(t, time.Month(i+1), tick.Month())
		assert.Equal(t, 1, tick.Day())
	}
}

func TestTimeTicksQuarterly(t *testing.T) {
	ticks := TimeTicks(date(2020, 2, 1), date(2022, 11, 1), 10)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.Equal(t, 0, (int(tick.Month())-1)%3, "tick %s is not on a quarter", tick)
		assert.False(t, tick.Before(date(2020, 2, 1)))
	}
}

func TestTimeTicksHourly(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := TimeTicks(start, start.Add(10*time.Hour), 10)
	require.Len(t, ticks, 11)
	for i, tick := range ticks {
		assert.Equal(t, i, tick.Hour())
	}
}

func TestTimeTicksYears(t *testing.T) {
	ticks := TimeTicks(date(1900, 1, 1), date(2000, 1, 1), 5)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.Equal(t, 0, tick.Year()%20)
	}
}
