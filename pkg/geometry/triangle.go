package geometry

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// DegenerateArea is the area at or below which three points are not
// treated as a triangle. It is absolute, in coordinate units squared, so
// very small but well-shaped triangles also count as degenerate.
const DegenerateArea = 0.1

// Triangle holds three vertices and the metrics derived from them.
// Vertices can only be changed through methods that recompute the
// derived values before returning.
type Triangle struct {
	vertices [3]Point

	sideA, sideB, sideC float64
	alpha, beta, gamma  float64
	area, perimeter     float64
	valid               bool
}

// NewTriangle creates a triangle and computes its derived metrics
func NewTriangle(a, b, c Point) *Triangle {
	t := &Triangle{vertices: [3]Point{a, b, c}}
	t.Recompute()
	return t
}

// A returns vertex A
func (t *Triangle) A() Point { return t.vertices[0] }

// B returns vertex B
func (t *Triangle) B() Point { return t.vertices[1] }

// C returns vertex C
func (t *Triangle) C() Point { return t.vertices[2] }

// Vertices returns a copy of the three vertices in A, B, C order
func (t *Triangle) Vertices() [3]Point { return t.vertices }

// Vertex returns vertex 0, 1 or 2 (A, B, C)
func (t *Triangle) Vertex(index int) (Point, error) {
	if index < 0 || index >= len(t.vertices) {
		return Point{}, errors.Wrapf(ErrVertexIndex, "index %d, only 0, 1 and 2 exist", index)
	}
	return t.vertices[index], nil
}

// SetVertex moves vertex 0, 1 or 2 (A, B, C) and recomputes
func (t *Triangle) SetVertex(index int, p Point) error {
	if index < 0 || index >= len(t.vertices) {
		return errors.Wrapf(ErrVertexIndex, "index %d, only 0, 1 and 2 exist", index)
	}
	t.vertices[index] = p
	t.Recompute()
	return nil
}

// SetVertices replaces all three vertices and recomputes once
func (t *Triangle) SetVertices(a, b, c Point) {
	t.vertices = [3]Point{a, b, c}
	t.Recompute()
}

// Translate moves all vertices by delta and recomputes once
func (t *Triangle) Translate(delta Point) {
	for i := range t.vertices {
		t.vertices[i] = t.vertices[i].Add(delta)
	}
	t.Recompute()
}

// SideA returns the length of side BC
func (t *Triangle) SideA() float64 { return t.sideA }

// SideB returns the length of side AC
func (t *Triangle) SideB() float64 { return t.sideB }

// SideC returns the length of side AB
func (t *Triangle) SideC() float64 { return t.sideC }

// Alpha returns angle BAC in radians
func (t *Triangle) Alpha() float64 { return t.alpha }

// Beta returns angle ABC in radians
func (t *Triangle) Beta() float64 { return t.beta }

// Gamma returns angle ACB in radians
func (t *Triangle) Gamma() float64 { return t.gamma }

// Area returns the unsigned area
func (t *Triangle) Area() float64 { return t.area }

// Perimeter returns the sum of the side lengths
func (t *Triangle) Perimeter() float64 { return t.perimeter }

// Semiperimeter returns half the perimeter
func (t *Triangle) Semiperimeter() float64 { return t.perimeter / 2 }

// IsTriangle is false when the vertices are collinear or coincident,
// i.e. the area does not exceed DegenerateArea.
func (t *Triangle) IsTriangle() bool { return t.valid }

// Recompute updates all derived metrics from the current vertices
func (t *Triangle) Recompute() {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]

	t.sideA = b.Distance(c)
	t.sideB = a.Distance(c)
	t.sideC = a.Distance(b)

	// Law of cosines
	sa, sb, sc := t.sideA, t.sideB, t.sideC
	t.alpha = acos((-sa*sa + sb*sb + sc*sc) / (2 * sb * sc))
	t.beta = acos((sa*sa - sb*sb + sc*sc) / (2 * sa * sc))
	t.gamma = acos((sa*sa + sb*sb - sc*sc) / (2 * sa * sb))

	d := a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)

	t.area = math.Abs(d / 2)
	t.perimeter = sa + sb + sc
	t.valid = t.area > DegenerateArea
}

// TrilinearToCartesian converts trilinear coordinates to a point. Each
// vertex is weighted by the opposite side times its coordinate.
func (t *Triangle) TrilinearToCartesian(x, y, z float64) (Point, error) {
	ax := t.sideA * x
	by := t.sideB * y
	cz := t.sideC * z

	denominator := ax + by + cz
	if denominator == 0 || math.IsNaN(denominator) {
		return Point{}, undefinedf("trilinear (%g, %g, %g) has zero weight", x, y, z)
	}

	return t.vertices[0].Mul(ax).
		Add(t.vertices[1].Mul(by)).
		Add(t.vertices[2].Mul(cz)).
		Div(denominator), nil
}

// BarycentricToCartesian returns x·A + y·B + z·C. The weights are used
// as given and need not sum to one.
func (t *Triangle) BarycentricToCartesian(x, y, z float64) Point {
	return t.vertices[0].Mul(x).
		Add(t.vertices[1].Mul(y)).
		Add(t.vertices[2].Mul(z))
}

func (t *Triangle) String() string {
	return fmt.Sprintf("A%s B%s C%s", t.vertices[0], t.vertices[1], t.vertices[2])
}

// acos clamps its argument to [-1, 1] so rounding near degenerate
// shapes does not produce NaN. A NaN argument (zero-length side) stays NaN.
func acos(x float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, x)))
}
