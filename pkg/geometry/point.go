package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a 2D point or vector
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Div divides the point by a scalar. Division by zero yields infinite
// coordinates; callers guard their denominators.
func (p Point) Div(scalar float64) Point {
	return Point{X: p.X / scalar, Y: p.Y / scalar}
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return p.Add(other).Div(2)
}

// Dot returns the dot product of two vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of the cross product of two vectors
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// DistanceSquared returns the squared distance between two points
func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// Intensity returns the magnitude of the vector
func (p Point) Intensity() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	length := p.Intensity()
	if length == 0 {
		return Point{}
	}
	return p.Div(length)
}

// Perpendicular returns the vector rotated by 90 degrees
func (p Point) Perpendicular() Point {
	return Point{X: -p.Y, Y: p.X}
}

// IsZero reports whether both coordinates are exactly zero
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsFinite reports whether neither coordinate is NaN or infinite
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ApproxEqual reports whether both coordinates are within tol of other
func (p Point) ApproxEqual(other Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, other.X, tol) &&
		scalar.EqualWithinAbs(p.Y, other.Y, tol)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Cosine returns the cosine of the angle at vertex between the rays to
// p1 and p2. It is NaN when either ray has zero length.
func Cosine(p1, vertex, p2 Point) float64 {
	v1 := p1.Sub(vertex)
	v2 := p2.Sub(vertex)
	return v1.Dot(v2) / (v1.Intensity() * v2.Intensity())
}

// Sine returns the (non-negative) sine of the angle at vertex between the
// rays to p1 and p2.
func Sine(p1, vertex, p2 Point) float64 {
	cosine := Cosine(p1, vertex, p2)
	return math.Sqrt(math.Max(0, 1-cosine*cosine))
}
