package chartdata

import "math"

// Point is a 2D data point with single-precision coordinates.
// It is a plain value type; equality is coordinate-wise.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
	}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// IsFinite reports whether both coordinates are finite (not NaN or Inf).
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Bounds is the axis-aligned bounding box of a set of points.
// Degenerate bounds (zero width or height) are valid: a single point has
// MinX == MaxX and MinY == MaxY.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// BoundsOf returns the degenerate bounds containing a single point.
func BoundsOf(p Point) Bounds {
	return Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// Width returns the extent of the X range.
func (b Bounds) Width() float32 {
	return b.MaxX - b.MinX
}

// Height returns the extent of the Y range.
func (b Bounds) Height() float32 {
	return b.MaxY - b.MinY
}

// Contains reports whether the point lies within the bounds (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ExpandToInclude grows the bounds to contain the point.
// A degenerate starting bounds expands correctly.
func (b *Bounds) ExpandToInclude(p Point) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Merge returns the smallest bounds containing both b and other.
func (b Bounds) Merge(other Bounds) Bounds {
	out := b
	if other.MinX < out.MinX {
		out.MinX = other.MinX
	}
	if other.MaxX > out.MaxX {
		out.MaxX = other.MaxX
	}
	if other.MinY < out.MinY {
		out.MinY = other.MinY
	}
	if other.MaxY > out.MaxY {
		out.MaxY = other.MaxY
	}
	return out
}
