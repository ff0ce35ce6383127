package mathutil

// Hermite evaluates a cubic Hermite segment at t in [0, 1] from its end
// values and end tangents (unit parameter spacing).
func Hermite(p0, p1, m0, m1, t float64) float64 {
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

// Lerp linearly interpolates between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// DeCasteljau evaluates a Bezier polygon of up to four control values at
// t in [0, 1] by repeated linear interpolation. One control value is returned
// as-is (a degenerate segment).
func DeCasteljau(ctrl []float64, t float64) float64 {
	var buf [4]float64
	w := buf[:len(ctrl)]
	copy(w, ctrl)
	for level := len(w) - 1; level > 0; level-- {
		for i := 0; i < level; i++ {
			w[i] = Lerp(w[i], w[i+1], t)
		}
	}
	return w[0]
}
