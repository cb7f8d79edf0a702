package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// EulerLineHalfLength is how far the Euler line extends on each side
	// of the centroid.
	EulerLineHalfLength = 2000

	// SideBisectorHalfLength is the half-length of the marks drawn
	// through each side's midpoint.
	SideBisectorHalfLength = 10

	// coincidence is the distance below which two derived points are
	// treated as the same point when a direction between them is needed.
	coincidence = 1e-9
)

// Segment is a straight line between two points
type Segment struct {
	Start Point
	End   Point
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Incenter is the point at trilinear (1, 1, 1)
func (t *Triangle) Incenter() (Point, error) {
	return t.TrilinearToCartesian(1, 1, 1)
}

// Inradius is the area divided by the semiperimeter
func (t *Triangle) Inradius() (float64, error) {
	s := t.Semiperimeter()
	if s == 0 {
		return 0, undefinedf("inradius of a triangle with zero perimeter")
	}
	return t.area / s, nil
}

// Incircle returns the circle tangent to all three sides
func (t *Triangle) Incircle() (Circle, error) {
	center, err := t.Incenter()
	if err != nil {
		return Circle{}, err
	}
	r, err := t.Inradius()
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: r}, nil
}

// Centroid is the point at barycentric (1/3, 1/3, 1/3)
func (t *Triangle) Centroid() Point {
	return t.BarycentricToCartesian(1.0/3, 1.0/3, 1.0/3)
}

// Medians returns the segments from each vertex to the midpoint of the
// opposite side, in A, B, C order.
func (t *Triangle) Medians() [3]Segment {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	return [3]Segment{
		{Start: a, End: b.Midpoint(c)},
		{Start: b, End: a.Midpoint(c)},
		{Start: c, End: a.Midpoint(b)},
	}
}

// Circumcenter is the point equidistant from all three vertices
func (t *Triangle) Circumcenter() (Point, error) {
	a, b, c := t.sideA, t.sideB, t.sideC
	x := a * (-a*a + b*b + c*c)
	y := b * (a*a - b*b + c*c)
	z := c * (a*a + b*b - c*c)

	return t.TrilinearToCartesian(x, y, z)
}

// Circumradius is the distance from the circumcenter to vertex A
func (t *Triangle) Circumradius() (float64, error) {
	center, err := t.Circumcenter()
	if err != nil {
		return 0, err
	}
	return center.Distance(t.vertices[0]), nil
}

// Circumcircle returns the circle through all three vertices
func (t *Triangle) Circumcircle() (Circle, error) {
	center, err := t.Circumcenter()
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: center.Distance(t.vertices[0])}, nil
}

// Orthocenter is the intersection of the altitudes
func (t *Triangle) Orthocenter() (Point, error) {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	sinA, cosA := Sine(b, a, c), Cosine(b, a, c)
	sinB, cosB := Sine(a, b, c), Cosine(a, b, c)
	sinC, cosC := Sine(a, c, b), Cosine(a, c, b)

	x := cosA - sinB*sinC
	y := cosB - sinC*sinA
	z := cosC - sinA*sinB

	return t.TrilinearToCartesian(x, y, z)
}

// AltitudeFoot projects vertex onto the line through p and q
func AltitudeFoot(vertex, p, q Point) (Point, error) {
	lengthSquared := p.DistanceSquared(q)
	if lengthSquared == 0 {
		return Point{}, undefinedf("altitude foot onto zero-length side at %s", p)
	}

	pq := q.Sub(p)
	k := pq.Dot(vertex.Sub(p)) / lengthSquared

	return p.Add(pq.Mul(k)), nil
}

// AltitudeFeet returns the feet of the altitudes from A, B and C
func (t *Triangle) AltitudeFeet() ([3]Point, error) {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	var feet [3]Point
	var err error
	if feet[0], err = AltitudeFoot(a, b, c); err != nil {
		return feet, err
	}
	if feet[1], err = AltitudeFoot(b, a, c); err != nil {
		return feet, err
	}
	if feet[2], err = AltitudeFoot(c, a, b); err != nil {
		return feet, err
	}
	return feet, nil
}

// EulerLine returns a long segment through the centroid and the
// circumcenter. It is undefined for equilateral triangles, where the two
// centers coincide.
func (t *Triangle) EulerLine() (Segment, error) {
	centroid := t.Centroid()
	circumcenter, err := t.Circumcenter()
	if err != nil {
		return Segment{}, err
	}

	direction := circumcenter.Sub(centroid)
	if scalar.EqualWithinAbs(direction.Intensity(), 0, coincidence) {
		return Segment{}, undefinedf("centroid and circumcenter coincide at %s", centroid)
	}
	direction = direction.Normalize()

	return Segment{
		Start: centroid.Add(direction.Mul(EulerLineHalfLength)),
		End:   centroid.Sub(direction.Mul(EulerLineHalfLength)),
	}, nil
}

// Excenters returns the centers of the excircles opposite A, B and C
func (t *Triangle) Excenters() ([3]Point, error) {
	var centers [3]Point
	coords := [3][3]float64{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}}
	for i, c := range coords {
		p, err := t.TrilinearToCartesian(c[0], c[1], c[2])
		if err != nil {
			return centers, err
		}
		centers[i] = p
	}
	return centers, nil
}

// Exradii returns the radii of the excircles opposite A, B and C
func (t *Triangle) Exradii() ([3]float64, error) {
	s := t.Semiperimeter()
	a, b, c := t.sideA, t.sideB, t.sideC
	var radii [3]float64
	if s-a <= 0 || s-b <= 0 || s-c <= 0 {
		return radii, undefinedf("exradius with semiperimeter %g not exceeding a side", s)
	}

	radii[0] = math.Sqrt(s * (s - b) * (s - c) / (s - a))
	radii[1] = math.Sqrt(s * (s - a) * (s - c) / (s - b))
	radii[2] = math.Sqrt(s * (s - a) * (s - b) / (s - c))
	return radii, nil
}

// Excircles returns the circles tangent to one side and the extensions
// of the other two, opposite A, B and C
func (t *Triangle) Excircles() ([3]Circle, error) {
	var circles [3]Circle
	centers, err := t.Excenters()
	if err != nil {
		return circles, err
	}
	radii, err := t.Exradii()
	if err != nil {
		return circles, err
	}
	for i := range circles {
		circles[i] = Circle{Center: centers[i], Radius: radii[i]}
	}
	return circles, nil
}

// NinePointCenter is the midpoint of the orthocenter and the circumcenter
func (t *Triangle) NinePointCenter() (Point, error) {
	orthocenter, err := t.Orthocenter()
	if err != nil {
		return Point{}, err
	}
	circumcenter, err := t.Circumcenter()
	if err != nil {
		return Point{}, err
	}
	return orthocenter.Midpoint(circumcenter), nil
}

// NinePointRadius is half the circumradius
func (t *Triangle) NinePointRadius() (float64, error) {
	r, err := t.Circumradius()
	if err != nil {
		return 0, err
	}
	return r / 2, nil
}

// NinePointCircle passes through the side midpoints, the altitude feet
// and the midpoints between each vertex and the orthocenter
func (t *Triangle) NinePointCircle() (Circle, error) {
	center, err := t.NinePointCenter()
	if err != nil {
		return Circle{}, err
	}
	r, err := t.NinePointRadius()
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: r}, nil
}

// SideBisectors returns short marks on the perpendicular bisectors of
// AB, AC and BC, centered on each midpoint and pointing at the
// circumcenter. When the circumcenter is the midpoint itself (the
// hypotenuse of a right triangle) the side's normal is used instead.
func (t *Triangle) SideBisectors() ([3]Segment, error) {
	var marks [3]Segment
	circumcenter, err := t.Circumcenter()
	if err != nil {
		return marks, err
	}

	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	sides := [3]Segment{{a, b}, {a, c}, {b, c}}
	for i, side := range sides {
		mid := side.Start.Midpoint(side.End)
		direction := circumcenter.Sub(mid)
		if scalar.EqualWithinAbs(direction.Intensity(), 0, coincidence) {
			direction = side.End.Sub(side.Start).Perpendicular()
		}
		direction = direction.Normalize().Mul(SideBisectorHalfLength)
		marks[i] = Segment{Start: mid.Add(direction), End: mid.Sub(direction)}
	}
	return marks, nil
}

// ExcircleTangentPoint returns where the excircle centered at center
// touches the line through from and to.
func ExcircleTangentPoint(from, to, center Point) (Point, error) {
	k, err := tangentParameter(from, to, center)
	if err != nil {
		return Point{}, err
	}
	return to.Add(to.Sub(from).Mul(k)), nil
}

// ExcircleTangentReflection returns the reflection of to through the
// tangent point of the excircle centered at center on the line through
// from and to.
func ExcircleTangentReflection(from, to, center Point) (Point, error) {
	k, err := tangentParameter(from, to, center)
	if err != nil {
		return Point{}, err
	}
	return to.Sub(from).Mul(2 * k).Add(to), nil
}

func tangentParameter(from, to, center Point) (float64, error) {
	lengthSquared := from.DistanceSquared(to)
	if lengthSquared == 0 {
		return 0, undefinedf("tangent on zero-length side at %s", from)
	}
	fromTo := to.Sub(from)
	return fromTo.Dot(center.Sub(to)) / lengthSquared, nil
}
