package geometry

import (
	"math"
)

// Circle is a center and a radius
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies on the circle within tol
func (c Circle) Contains(p Point, tol float64) bool {
	return math.Abs(c.Center.Distance(p)-c.Radius) <= tol
}
