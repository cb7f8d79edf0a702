package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// The startup triangle of the GUI: right angle at C.
func referenceTriangle() *Triangle {
	return NewTriangle(NewPoint(100, 100), NewPoint(100, 300), NewPoint(200, 200))
}

var sampleTriangles = []*Triangle{
	NewTriangle(NewPoint(100, 100), NewPoint(100, 300), NewPoint(200, 200)),
	NewTriangle(NewPoint(0, 0), NewPoint(7, 1), NewPoint(3, 5)),
	NewTriangle(NewPoint(-40, 12), NewPoint(250, -30), NewPoint(61, 400)),
	NewTriangle(NewPoint(0, 0), NewPoint(300, 0), NewPoint(10, 20)), // obtuse at C
	NewTriangle(NewPoint(5, 5), NewPoint(6, 5), NewPoint(5.5, 900)),
}

func TestReferenceTriangleMetrics(t *testing.T) {
	tri := referenceTriangle()

	assert.InDelta(t, 100*math.Sqrt2, tri.SideA(), tolerance)
	assert.InDelta(t, 100*math.Sqrt2, tri.SideB(), tolerance)
	assert.InDelta(t, 200.0, tri.SideC(), tolerance)
	assert.InDelta(t, 10000.0, tri.Area(), tolerance)
	assert.InDelta(t, 200+200*math.Sqrt2, tri.Perimeter(), tolerance)
	assert.InDelta(t, 100+100*math.Sqrt2, tri.Semiperimeter(), tolerance)
	assert.InDelta(t, math.Pi/4, tri.Alpha(), tolerance)
	assert.InDelta(t, math.Pi/4, tri.Beta(), tolerance)
	assert.InDelta(t, math.Pi/2, tri.Gamma(), tolerance)
	assert.True(t, tri.IsTriangle())
}

func TestCollinearTriangle(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(10, 0), NewPoint(20, 0))

	assert.Equal(t, 0.0, tri.Area())
	assert.False(t, tri.IsTriangle())
	// Clamped law of cosines keeps the angles finite
	assert.InDelta(t, 0.0, tri.Alpha(), tolerance)
	assert.InDelta(t, math.Pi, tri.Beta(), tolerance)
	assert.InDelta(t, 0.0, tri.Gamma(), tolerance)
}

func TestDegenerateThreshold(t *testing.T) {
	// Area 0.1 exactly is still degenerate
	tri := NewTriangle(NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 0.2))
	assert.InDelta(t, 0.1, tri.Area(), 1e-12)
	assert.False(t, tri.IsTriangle())

	require.NoError(t, tri.SetVertex(2, NewPoint(0, 0.3)))
	assert.True(t, tri.IsTriangle())
}

func TestAreaPermutationInvariance(t *testing.T) {
	for i, tri := range sampleTriangles {
		a, b, c := tri.A(), tri.B(), tri.C()
		area := tri.Area()
		assert.InDelta(t, area, NewTriangle(b, c, a).Area(), tolerance, "triangle %d", i)
		assert.InDelta(t, area, NewTriangle(c, a, b).Area(), tolerance, "triangle %d", i)
		assert.InDelta(t, area, NewTriangle(b, a, c).Area(), tolerance, "triangle %d", i)
	}
}

func TestTriangleInequalityAndAngleSum(t *testing.T) {
	for i, tri := range sampleTriangles {
		t.Run(fmt.Sprintf("triangle %d", i), func(t *testing.T) {
			require.True(t, tri.IsTriangle())
			assert.Greater(t, tri.SideA()+tri.SideB(), tri.SideC())
			assert.Greater(t, tri.SideB()+tri.SideC(), tri.SideA())
			assert.Greater(t, tri.SideC()+tri.SideA(), tri.SideB())
			assert.InDelta(t, math.Pi, tri.Alpha()+tri.Beta()+tri.Gamma(), 1e-9)
		})
	}
}

func TestVertexIndex(t *testing.T) {
	tri := referenceTriangle()

	for i, want := range []Point{tri.A(), tri.B(), tri.C()} {
		got, err := tri.Vertex(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, index := range []int{-1, 3, 42} {
		_, err := tri.Vertex(index)
		assert.True(t, errors.Is(err, ErrVertexIndex), "index %d", index)

		err = tri.SetVertex(index, NewPoint(1, 1))
		assert.True(t, errors.Is(err, ErrVertexIndex), "index %d", index)
	}

	// Failed writes leave the triangle untouched
	assert.Equal(t, referenceTriangle().Vertices(), tri.Vertices())
}

func TestDragRecomputes(t *testing.T) {
	tri := referenceTriangle()
	require.NoError(t, tri.SetVertex(0, NewPoint(150, 120)))

	fresh := NewTriangle(NewPoint(150, 120), NewPoint(100, 300), NewPoint(200, 200))
	assert.Equal(t, fresh.SideA(), tri.SideA())
	assert.InDelta(t, NewPoint(150, 120).Distance(NewPoint(200, 200)), tri.SideB(), tolerance)
	assert.InDelta(t, NewPoint(150, 120).Distance(NewPoint(100, 300)), tri.SideC(), tolerance)
	assert.Equal(t, fresh.Area(), tri.Area())
	assert.Equal(t, fresh.Perimeter(), tri.Perimeter())

	incenter, err := tri.Incenter()
	require.NoError(t, err)
	freshIncenter, err := fresh.Incenter()
	require.NoError(t, err)
	assert.Equal(t, freshIncenter, incenter)

	circumcenter, err := tri.Circumcenter()
	require.NoError(t, err)
	freshCircumcenter, err := fresh.Circumcenter()
	require.NoError(t, err)
	assert.Equal(t, freshCircumcenter, circumcenter)

	assert.Equal(t, fresh.Centroid(), tri.Centroid())
}

func TestTranslate(t *testing.T) {
	tri := referenceTriangle()
	area := tri.Area()
	tri.Translate(NewPoint(-30, 12.5))

	assert.Equal(t, NewPoint(70, 112.5), tri.A())
	assert.Equal(t, NewPoint(70, 312.5), tri.B())
	assert.Equal(t, NewPoint(170, 212.5), tri.C())
	assert.InDelta(t, area, tri.Area(), tolerance)
}

func TestSetVertices(t *testing.T) {
	tri := referenceTriangle()
	tri.SetVertices(NewPoint(0, 0), NewPoint(10, 0), NewPoint(20, 0))
	assert.False(t, tri.IsTriangle())

	tri.SetVertices(NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 4))
	assert.InDelta(t, 6.0, tri.Area(), tolerance)
	assert.InDelta(t, 12.0, tri.Perimeter(), tolerance)
}

func TestTrilinearToCartesian(t *testing.T) {
	tri := referenceTriangle()

	// Vertices themselves
	p, err := tri.TrilinearToCartesian(1, 0, 0)
	require.NoError(t, err)
	assert.True(t, p.ApproxEqual(tri.A(), tolerance))
	p, err = tri.TrilinearToCartesian(0, 0, 7)
	require.NoError(t, err)
	assert.True(t, p.ApproxEqual(tri.C(), tolerance))

	_, err = tri.TrilinearToCartesian(0, 0, 0)
	assert.True(t, errors.Is(err, ErrUndefined))

	// a·x + b·y + c·z = 100 - 100 + 0
	_, err = tri.TrilinearToCartesian(1/tri.SideA(), -1/tri.SideB(), 0)
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestBarycentricToCartesian(t *testing.T) {
	tri := referenceTriangle()
	assert.Equal(t, tri.B(), tri.BarycentricToCartesian(0, 1, 0))
	// Weights are not normalized
	assert.Equal(t, tri.A().Mul(2), tri.BarycentricToCartesian(2, 0, 0))
}
