package mathutil

import "gonum.org/v1/gonum/floats"

// MovingAverage writes the symmetric moving average of src with the given
// radius into dst (len(dst) == len(src)). Values near either end average over
// a truncated window instead of wrapping or padding. Window sums come from a
// single prefix-sum pass, so the filter is O(n) for any radius.
func MovingAverage(dst, src []float64, radius int) {
	n := len(src)
	if n == 0 {
		return
	}
	if radius < 1 {
		copy(dst, src)
		return
	}

	cum := make([]float64, n)
	floats.CumSum(cum, src)
	windowSum := func(lo, hi int) float64 { // [lo, hi)
		s := cum[hi-1]
		if lo > 0 {
			s -= cum[lo-1]
		}
		return s
	}

	for i := 0; i < n; i++ {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius + 1
		if hi > n {
			hi = n
		}
		dst[i] = windowSum(lo, hi) / float64(hi-lo)
	}
}
