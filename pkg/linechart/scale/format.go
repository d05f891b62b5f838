package scale

import (
	"math"
	"strconv"
)

var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// exponent returns the decimal exponent of x as written in scientific
// notation (0 for zero).
func exponent(x float64) int {
	if x == 0 || !isFinite(x) {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 'e' {
			e, err := strconv.Atoi(s[i+1:])
			if err != nil {
				return 0
			}
			return e
		}
	}
	return 0
}

// prefixExponent returns the multiple of three used to pick an SI prefix
// for magnitude v, clamped to the yocto..yotta range.
func prefixExponent(v float64) int {
	e := int(math.Floor(float64(exponent(v)) / 3))
	if e < -8 {
		e = -8
	}
	if e > 8 {
		e = 8
	}
	return e * 3
}

// SIFormatter returns a formatter that writes ticks spaced step apart with
// one shared SI prefix chosen from maxAbs, the largest magnitude on the
// axis. Decimals are added only as far as step needs to tell ticks apart,
// so [0, 1500] in steps of 500 reads 0.0k, 0.5k, 1.0k, 1.5k.
func SIFormatter(step, maxAbs float64) func(float64) string {
	e := prefixExponent(maxAbs)
	precision := 0
	if step != 0 {
		precision = e - exponent(math.Abs(step))
	}
	if precision < 0 {
		precision = 0
	}
	k := math.Pow(10, float64(-e))
	prefix := siPrefixes[8+e/3]

	return func(v float64) string {
		s := strconv.FormatFloat(v*k, 'f', precision, 64)
		if s == "-0" {
			s = "0"
		}
		return s + prefix
	}
}
