// Package mathutil provides the float64 numeric kernels behind curve
// interpolation and smoothing: cubic-spline system solves, Hermite and
// Bezier basis evaluation, and truncated moving averages.
package mathutil

import "gonum.org/v1/gonum/floats"

// NaturalSplineM returns the second derivatives of the natural cubic spline
// through y with unit knot spacing. The end conditions are zero curvature:
// M[0] == M[n-1] == 0. Fewer than three knots yield all zeros (the spline
// degenerates to a straight segment).
//
// The interior system is tridiagonal with constant coefficients
// (1, 4, 1) and right-hand side 6*(y[i+1] - 2*y[i] + y[i-1]), solved by the
// Thomas sweep.
func NaturalSplineM(y []float64) []float64 {
	n := len(y)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	u := n - 2 // interior unknowns M[1..n-2]
	diag := make([]float64, u)
	rhs := make([]float64, u)
	for i := 0; i < u; i++ {
		diag[i] = 4
		rhs[i] = 6 * (y[i+2] - 2*y[i+1] + y[i])
	}

	x := solveUnitTridiag(diag, rhs)
	copy(m[1:n-1], x)
	return m
}

// PeriodicSplineM returns the second derivatives of the periodic cubic
// spline through y with unit knot spacing, where the curve wraps from the
// last knot back to the first. The cyclic tridiagonal system is solved with
// the Sherman-Morrison correction around the Thomas sweep.
func PeriodicSplineM(y []float64) []float64 {
	n := len(y)
	if n < 3 {
		return make([]float64, n)
	}

	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := y[(i-1+n)%n]
		next := y[(i+1)%n]
		rhs[i] = 6 * (next - 2*y[i] + prev)
	}

	// Cyclic system: diagonal 4, off-diagonals 1, corners 1.
	// Split off the corner entries with rank-one vector u = (gamma, 0, ..., 1)
	// and solve the modified tridiagonal system twice.
	const gamma = -4.0
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = 4
	}
	diag[0] -= gamma
	diag[n-1] -= 1.0 / gamma

	x := solveUnitTridiag(diag, rhs)

	corr := make([]float64, n)
	corr[0] = gamma
	corr[n-1] = 1
	z := solveUnitTridiag(diag, corr)

	fact := (x[0] + x[n-1]/gamma) / (1 + z[0] + z[n-1]/gamma)
	floats.AddScaled(x, -fact, z)
	return x
}

// solveUnitTridiag solves the tridiagonal system with the given diagonal and
// unit off-diagonals. diag and rhs are not modified.
func solveUnitTridiag(diag, rhs []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)

	cp[0] = 1 / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		den := diag[i] - cp[i-1]
		cp[i] = 1 / den
		dp[i] = (rhs[i] - dp[i-1]) / den
	}

	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

// SplineSegment evaluates a cubic spline segment with unit knot spacing at
// u in [0, 1], given the segment's end values and second derivatives.
func SplineSegment(y0, y1, m0, m1, u float64) float64 {
	a := 1 - u
	b := u
	return a*y0 + b*y1 + ((a*a*a-a)*m0+(b*b*b-b)*m1)/6
}
