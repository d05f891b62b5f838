package scale

import (
	"math"
	"sort"
	"time"
)

type timeUnit int

const (
	unitMillisecond timeUnit = iota
	unitSecond
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

const (
	approxDay   = 24 * time.Hour
	approxWeek  = 7 * approxDay
	approxMonth = 30 * approxDay
	approxYear  = 365 * approxDay
)

type tickInterval struct {
	unit   timeUnit
	step   int
	approx time.Duration
}

var tickIntervals = []tickInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, approxDay},
	{unitDay, 2, 2 * approxDay},
	{unitWeek, 1, approxWeek},
	{unitMonth, 1, approxMonth},
	{unitMonth, 3, 3 * approxMonth},
	{unitYear, 1, approxYear},
}

// TimeTicks returns instants in [start, stop] on the calendar interval
// whose length best matches (stop-start)/count.
func TimeTicks(start, stop time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	if stop.Before(start) {
		start, stop = stop, start
	}
	target := stop.Sub(start) / time.Duration(count)

	i := sort.Search(len(tickIntervals), func(i int) bool {
		return tickIntervals[i].approx > target
	})

	var iv tickInterval
	switch {
	case i == len(tickIntervals):
		years := float64(approxYear)
		step := TickStep(float64(start.UnixNano())/years, float64(stop.UnixNano())/years, count)
		iv = tickInterval{unit: unitYear, step: int(math.Max(1, step))}
	case i == 0:
		ms := float64(time.Millisecond)
		step := TickStep(float64(start.UnixNano())/ms, float64(stop.UnixNano())/ms, count)
		iv = tickInterval{unit: unitMillisecond, step: int(math.Max(1, step))}
	default:
		prev, next := tickIntervals[i-1], tickIntervals[i]
		if float64(target)/float64(prev.approx) < float64(next.approx)/float64(target) {
			iv = prev
		} else {
			iv = next
		}
	}
	return iv.between(start, stop)
}

// between lists the boundaries of the interval inside [start, stop].
func (iv tickInterval) between(start, stop time.Time) []time.Time {
	if iv.unit == unitMillisecond {
		step := time.Duration(iv.step) * time.Millisecond
		t := start.Truncate(step)
		if t.Before(start) {
			t = t.Add(step)
		}
		var ticks []time.Time
		for ; !t.After(stop); t = t.Add(step) {
			ticks = append(ticks, t)
		}
		return ticks
	}

	var ticks []time.Time
	for t := floorTime(start, iv.unit); !t.After(stop); t = nextTime(t, iv.unit) {
		if t.Before(start) {
			continue
		}
		if iv.step > 1 && fieldOf(t, iv.unit)%iv.step != 0 {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

func floorTime(t time.Time, u timeUnit) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	switch u {
	case unitSecond:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	case unitMinute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case unitHour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case unitDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case unitWeek:
		return time.Date(y, mo, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case unitMonth:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
}

func nextTime(t time.Time, u timeUnit) time.Time {
	switch u {
	case unitSecond:
		return t.Add(time.Second)
	case unitMinute:
		return t.Add(time.Minute)
	case unitHour:
		return t.Add(time.Hour)
	case unitDay:
		return t.AddDate(0, 0, 1)
	case unitWeek:
		return t.AddDate(0, 0, 7)
	case unitMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}

// fieldOf returns the calendar field that multi-step intervals filter on.
func fieldOf(t time.Time, u timeUnit) int {
	switch u {
	case unitSecond:
		return t.Second()
	case unitMinute:
		return t.Minute()
	case unitHour:
		return t.Hour()
	case unitDay:
		return t.Day() - 1
	case unitMonth:
		return int(t.Month()) - 1
	case unitYear:
		return t.Year()
	default:
		return 0
	}
}
