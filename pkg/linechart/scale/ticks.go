package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec picks a step of 1, 2 or 5 times a power of ten so that about
// count ticks cover [start, stop]. A negative inc means the step is 1/-inc.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns nice tick values spanning [start, stop]. count is a hint;
// the result may hold a few more or fewer values.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || !isFinite(start) || !isFinite(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// TickStep returns the distance between adjacent values of Ticks.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || !isFinite(start) || !isFinite(stop) || start == stop {
		return 0
	}
	sign := 1.0
	if stop < start {
		start, stop = stop, start
		sign = -1
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	if inc < 0 {
		return sign / -inc
	}
	return sign * inc
}
