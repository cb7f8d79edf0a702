package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, expected, actual Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-6, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, 1e-6, msgAndArgs...)
}

func TestReferenceTriangleCenters(t *testing.T) {
	tri := referenceTriangle()
	r2 := 100 * math.Sqrt2

	incenter, err := tri.Incenter()
	require.NoError(t, err)
	assertPoint(t, NewPoint(r2, 200), incenter)

	inradius, err := tri.Inradius()
	require.NoError(t, err)
	assert.InDelta(t, r2-100, inradius, 1e-9)

	assertPoint(t, NewPoint(400.0/3, 200), tri.Centroid())

	// Right angle at C: circumcenter is the midpoint of AB, orthocenter is C
	circumcenter, err := tri.Circumcenter()
	require.NoError(t, err)
	assertPoint(t, NewPoint(100, 200), circumcenter)

	circumradius, err := tri.Circumradius()
	require.NoError(t, err)
	assert.InDelta(t, 100.0, circumradius, 1e-9)

	orthocenter, err := tri.Orthocenter()
	require.NoError(t, err)
	assertPoint(t, tri.C(), orthocenter)

	ninePoint, err := tri.NinePointCircle()
	require.NoError(t, err)
	assertPoint(t, NewPoint(150, 200), ninePoint.Center)
	assert.InDelta(t, 50.0, ninePoint.Radius, 1e-9)

	excenters, err := tri.Excenters()
	require.NoError(t, err)
	assertPoint(t, NewPoint(200, 200+r2), excenters[0])
	assertPoint(t, NewPoint(200, 200-r2), excenters[1])

	exradii, err := tri.Exradii()
	require.NoError(t, err)
	assert.InDelta(t, 100.0, exradii[0], 1e-9)
	assert.InDelta(t, 100.0, exradii[1], 1e-9)
	// For a right angle at C the opposite exradius equals the semiperimeter
	assert.InDelta(t, tri.Semiperimeter(), exradii[2], 1e-9)
}

func TestCentroidIsVertexMean(t *testing.T) {
	for i, tri := range sampleTriangles {
		mean := tri.A().Add(tri.B()).Add(tri.C()).Div(3)
		assertPoint(t, mean, tri.Centroid(), "triangle %d", i)
	}
}

func TestCircumcenterEquidistant(t *testing.T) {
	for i, tri := range sampleTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			center, err := tri.Circumcenter()
			require.NoError(t, err)

			dA := center.Distance(tri.A())
			assert.InDelta(t, dA, center.Distance(tri.B()), 1e-6*dA)
			assert.InDelta(t, dA, center.Distance(tri.C()), 1e-6*dA)

			// Cross check against the determinant formula
			circle, err := circleThroughPoints(tri.A(), tri.B(), tri.C())
			require.NoError(t, err)
			assert.InDelta(t, circle.Radius, dA, 1e-6*dA)
			assert.True(t, circle.Center.ApproxEqual(center, 1e-6*dA))
		})
	}
}

func TestEulerLineCollinearity(t *testing.T) {
	for i, tri := range sampleTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			centroid := tri.Centroid()
			circumcenter, err := tri.Circumcenter()
			require.NoError(t, err)
			orthocenter, err := tri.Orthocenter()
			require.NoError(t, err)

			u := circumcenter.Sub(centroid)
			v := orthocenter.Sub(centroid)
			scale := math.Max(1, u.Intensity()*v.Intensity())
			assert.InDelta(t, 0.0, u.Cross(v)/scale, 1e-6)

			line, err := tri.EulerLine()
			require.NoError(t, err)
			assert.InDelta(t, 2*EulerLineHalfLength, line.Length(), 1e-6)
			assertPoint(t, centroid, line.Start.Midpoint(line.End))
		})
	}
}

func TestEulerLineUndefinedForEquilateral(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(100, 0), NewPoint(50, 50*math.Sqrt(3)))
	_, err := tri.EulerLine()
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestOrthocenterOnAltitudes(t *testing.T) {
	for i, tri := range sampleTriangles {
		orthocenter, err := tri.Orthocenter()
		require.NoError(t, err)

		// (H - A) ⟂ (C - B), and cyclic
		a, b, c := tri.A(), tri.B(), tri.C()
		scale := tri.Perimeter() * tri.Perimeter()
		assert.InDelta(t, 0.0, orthocenter.Sub(a).Dot(c.Sub(b))/scale, 1e-9, "triangle %d", i)
		assert.InDelta(t, 0.0, orthocenter.Sub(b).Dot(c.Sub(a))/scale, 1e-9, "triangle %d", i)
		assert.InDelta(t, 0.0, orthocenter.Sub(c).Dot(b.Sub(a))/scale, 1e-9, "triangle %d", i)
	}
}

func TestAltitudeFoot(t *testing.T) {
	foot, err := AltitudeFoot(NewPoint(3, 7), NewPoint(0, 0), NewPoint(10, 0))
	require.NoError(t, err)
	assertPoint(t, NewPoint(3, 0), foot)

	// Feet may fall on the extension of the side
	foot, err = AltitudeFoot(NewPoint(-4, 2), NewPoint(0, 0), NewPoint(10, 0))
	require.NoError(t, err)
	assertPoint(t, NewPoint(-4, 0), foot)

	_, err = AltitudeFoot(NewPoint(3, 7), NewPoint(1, 1), NewPoint(1, 1))
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestNinePointCircle(t *testing.T) {
	for i, tri := range sampleTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			circle, err := tri.NinePointCircle()
			require.NoError(t, err)

			orthocenter, err := tri.Orthocenter()
			require.NoError(t, err)
			circumcenter, err := tri.Circumcenter()
			require.NoError(t, err)
			assertPoint(t, orthocenter.Midpoint(circumcenter), circle.Center)

			tol := 1e-6 * circle.Radius
			a, b, c := tri.A(), tri.B(), tri.C()
			for _, m := range []Point{a.Midpoint(b), b.Midpoint(c), a.Midpoint(c)} {
				assert.True(t, circle.Contains(m, tol), "side midpoint %s", m)
			}

			feet, err := tri.AltitudeFeet()
			require.NoError(t, err)
			for _, f := range feet {
				assert.True(t, circle.Contains(f, tol), "altitude foot %s", f)
			}

			for _, v := range []Point{a, b, c} {
				m := v.Midpoint(orthocenter)
				assert.True(t, circle.Contains(m, tol), "vertex-orthocenter midpoint %s", m)
			}

			// Same circle as the one through the side midpoints
			through, err := circleThroughPoints(a.Midpoint(b), b.Midpoint(c), a.Midpoint(c))
			require.NoError(t, err)
			assert.InDelta(t, through.Radius, circle.Radius, tol)
		})
	}
}

func TestExcircleTangents(t *testing.T) {
	for i, tri := range sampleTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			circles, err := tri.Excircles()
			require.NoError(t, err)

			a, b, c := tri.A(), tri.B(), tri.C()
			// Excircle opposite A touches BC and the extensions of AB, AC
			lines := [3][][2]Point{
				{{a, b}, {a, c}, {b, c}},
				{{b, a}, {b, c}, {a, c}},
				{{c, a}, {c, b}, {a, b}},
			}
			for j, circle := range circles {
				for _, line := range lines[j] {
					p, err := ExcircleTangentPoint(line[0], line[1], circle.Center)
					require.NoError(t, err)
					assert.InDelta(t, circle.Radius, circle.Center.Distance(p), 1e-6*circle.Radius)

					r, err := ExcircleTangentReflection(line[0], line[1], circle.Center)
					require.NoError(t, err)
					assertPoint(t, p, r.Midpoint(line[1]))
				}
			}
		})
	}

	_, err := ExcircleTangentPoint(NewPoint(1, 1), NewPoint(1, 1), NewPoint(5, 5))
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestExradiiUndefinedWhenDegenerate(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(10, 0), NewPoint(20, 0))
	_, err := tri.Exradii()
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestSideBisectors(t *testing.T) {
	for i, tri := range sampleTriangles {
		marks, err := tri.SideBisectors()
		require.NoError(t, err)

		a, b, c := tri.A(), tri.B(), tri.C()
		sides := [3][2]Point{{a, b}, {a, c}, {b, c}}
		for j, mark := range marks {
			side := sides[j][1].Sub(sides[j][0])
			assert.InDelta(t, 2*SideBisectorHalfLength, mark.Length(), 1e-9, "triangle %d side %d", i, j)
			assertPoint(t, sides[j][0].Midpoint(sides[j][1]), mark.Start.Midpoint(mark.End))
			assert.InDelta(t, 0.0, mark.End.Sub(mark.Start).Normalize().Dot(side.Normalize()), 1e-6,
				"triangle %d side %d", i, j)
		}
	}
}

func TestMedians(t *testing.T) {
	tri := referenceTriangle()
	medians := tri.Medians()
	centroid := tri.Centroid()
	for _, m := range medians {
		// The centroid divides each median 2:1
		assertPoint(t, centroid, m.Start.Add(m.End.Sub(m.Start).Mul(2.0/3)))
	}
}

func TestCircleThroughCollinearPoints(t *testing.T) {
	_, err := circleThroughPoints(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2))
	assert.True(t, errors.Is(err, ErrUndefined))
}
