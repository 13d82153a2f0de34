package arcline

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
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
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the negation of the point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors, computed with fused
// multiply-adds to limit cancellation error.
func (p Point) Dot(q Point) float64 {
	return sumOfProd(p.X, q.X, p.Y, q.Y)
}

// Cross returns the 2D cross product (scalar), computed with fused
// multiply-adds to limit cancellation error.
func (p Point) Cross(q Point) float64 {
	return diffOfProd(p.X, q.Y, p.Y, q.X)
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.Dot(p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction and the original
// length. The zero vector normalizes to the zero vector with length 0.
func (p Point) Normalize() (Point, float64) {
	length := p.Length()
	if length == 0 {
		return Point{}, 0
	}
	return Point{X: p.X / length, Y: p.Y / length}, length
}

// Perp returns the vector rotated 90° counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// CloseEnough reports whether both coordinates of p and q differ by less
// than eps.
func (p Point) CloseEnough(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// diffOfProd computes a*b - c*d with an FMA-based correction term
// (Kahan's algorithm), accurate to a couple of ulps.
func diffOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(-c, d, cd)
	dop := math.FMA(a, b, -cd)
	return dop + err
}

// sumOfProd computes a*b + c*d with an FMA-based correction term.
func sumOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(c, d, -cd)
	sop := math.FMA(a, b, cd)
	return sop + err
}

// orient2D returns a positive value if a, b, c are in counter-clockwise
// order, negative if clockwise, and (close to) zero if collinear.
func orient2D(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
