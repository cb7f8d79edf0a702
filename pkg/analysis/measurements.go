package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/trivis/pkg/geometry"
	"gonum.org/v1/gonum/floats/scalar"
)

// angleTolerance decides when an angle counts as right, in radians
const angleTolerance = 1e-9

// sideTolerance decides when two sides count as equal, relative to the
// longer one
const sideTolerance = 1e-9

// SideInfo describes one side of the triangle
type SideInfo struct {
	Name   string // "a", "b" or "c"
	From   string
	To     string
	Length float64
}

// CenterInfo is a named point of the triangle, optionally with the radius
// of its circle. Err is set when the construction is undefined.
type CenterInfo struct {
	Name      string
	Point     geometry.Point
	Radius    float64
	HasRadius bool
	Err       error
}

// Report contains the metrics and notable centers of a triangle
type Report struct {
	Vertices   [3]geometry.Point
	Sides      []SideInfo
	Angles     [3]float64 // alpha, beta, gamma in degrees
	Area       float64
	Perimeter  float64
	Valid      bool
	ByAngle    string
	BySides    string
	Centers    []CenterInfo
	Excircles  []CenterInfo
	AngleTotal float64
}

// Analyze builds a report for the current vertices of t
func Analyze(t *geometry.Triangle) *Report {
	r := &Report{
		Vertices: t.Vertices(),
		Sides: []SideInfo{
			{Name: "a", From: "B", To: "C", Length: t.SideA()},
			{Name: "b", From: "A", To: "C", Length: t.SideB()},
			{Name: "c", From: "A", To: "B", Length: t.SideC()},
		},
		Angles:    [3]float64{degrees(t.Alpha()), degrees(t.Beta()), degrees(t.Gamma())},
		Area:      t.Area(),
		Perimeter: t.Perimeter(),
		Valid:     t.IsTriangle(),
	}
	r.AngleTotal = r.Angles[0] + r.Angles[1] + r.Angles[2]

	if r.Valid {
		r.ByAngle = classifyByAngle(t)
		r.BySides = classifyBySides(t)
	}

	r.Centers = []CenterInfo{
		circleInfo("Incircle", t.Incircle),
		{Name: "Centroid", Point: t.Centroid()},
		circleInfo("Circumcircle", t.Circumcircle),
		pointInfo("Orthocenter", t.Orthocenter),
		circleInfo("Nine-point circle", t.NinePointCircle),
	}

	circles, err := t.Excircles()
	for i, name := range []string{"Excircle A", "Excircle B", "Excircle C"} {
		info := CenterInfo{Name: name, HasRadius: true, Err: err}
		if err == nil {
			info.Point = circles[i].Center
			info.Radius = circles[i].Radius
		}
		r.Excircles = append(r.Excircles, info)
	}

	return r
}

func circleInfo(name string, f func() (geometry.Circle, error)) CenterInfo {
	c, err := f()
	return CenterInfo{Name: name, Point: c.Center, Radius: c.Radius, HasRadius: true, Err: err}
}

func pointInfo(name string, f func() (geometry.Point, error)) CenterInfo {
	p, err := f()
	return CenterInfo{Name: name, Point: p, Err: err}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func classifyByAngle(t *geometry.Triangle) string {
	largest := math.Max(t.Alpha(), math.Max(t.Beta(), t.Gamma()))
	switch {
	case scalar.EqualWithinAbs(largest, math.Pi/2, angleTolerance):
		return "right"
	case largest > math.Pi/2:
		return "obtuse"
	default:
		return "acute"
	}
}

func classifyBySides(t *geometry.Triangle) string {
	equal := func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, sideTolerance, sideTolerance)
	}
	a, b, c := t.SideA(), t.SideB(), t.SideC()
	switch {
	case equal(a, b) && equal(b, c):
		return "equilateral"
	case equal(a, b) || equal(b, c) || equal(a, c):
		return "isosceles"
	default:
		return "scalene"
	}
}

// SidesByLength returns the sides ordered from longest to shortest
func (r *Report) SidesByLength() []SideInfo {
	sides := make([]SideInfo, len(r.Sides))
	copy(sides, r.Sides)

	sort.SliceStable(sides, func(i, j int) bool {
		return sides[i].Length > sides[j].Length
	})

	return sides
}

// NearestVertex returns the index of the vertex nearest to p and its
// distance
func NearestVertex(t *geometry.Triangle, p geometry.Point) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, vertex := range t.Vertices() {
		distance := p.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with its unit
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// FormatCenter formats a center line such as "(100.00, 200.00) r=100.00"
func FormatCenter(c CenterInfo) string {
	if c.Err != nil {
		return "undefined"
	}
	if c.HasRadius {
		return fmt.Sprintf("%s r=%s", FormatPoint(c.Point), FormatMeasurement(c.Radius, ""))
	}
	return FormatPoint(c.Point)
}
