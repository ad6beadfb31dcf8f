package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitTriangle() (tri Triangle) {
	tri.Reinit(Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0})
	return
}

func TestTriangleDerivedGeometry(t *testing.T) {
	tri := unitTriangle()

	assert.InDelta(t, 0.5, tri.Area(), 1.e-14)
	assert.InDelta(t, math.Sqrt2, tri.LongestSide(), 1.e-14)

	c := tri.Center()
	assert.InDelta(t, 1.0/3.0, c[0], 1.e-14)
	assert.InDelta(t, 1.0/3.0, c[1], 1.e-14)
	assert.InDelta(t, 0, c[2], 1.e-14)

	n := tri.Normal()
	assert.InDelta(t, 0, n[0], 1.e-14)
	assert.InDelta(t, 0, n[1], 1.e-14)
	assert.InDelta(t, 1, n[2], 1.e-14)
}

func TestClosestTrianglePointInside(t *testing.T) {
	tri := unitTriangle()

	// A point strictly inside, offset along the normal, projects back onto
	// itself in the plane.
	p := Point3{0.25, 0.25, 1.5}
	pc := tri.ClosestTrianglePoint(p)

	assert.InDelta(t, 0.25, pc[0], 1.e-14)
	assert.InDelta(t, 0.25, pc[1], 1.e-14)
	assert.InDelta(t, 0, pc[2], 1.e-14)

	t3 := tri.BarycentricCoordinates(pc)
	assert.InDelta(t, 1, t3[0]+t3[1]+t3[2], 1.e-14)
	for _, w := range t3 {
		assert.Greater(t, w, 0.0)
		assert.Less(t, w, 1.0)
	}
}

func TestClosestTrianglePointOutside(t *testing.T) {
	tri := unitTriangle()

	// Outside beyond the hypotenuse: the result lies on the edge x+y=1.
	p := Point3{1, 1, 2}
	pc := tri.ClosestTrianglePoint(p)

	assert.InDelta(t, 0.5, pc[0], 1.e-14)
	assert.InDelta(t, 0.5, pc[1], 1.e-14)
	assert.InDelta(t, 0, pc[2], 1.e-14)

	// Outside beyond a vertex: clamped to the vertex itself.
	p = Point3{-1, -1, 0}
	pc = tri.ClosestTrianglePoint(p)
	assert.InDelta(t, 0, pc.Sub(Point3{0, 0, 0}).Norm(), 1.e-14)
}

func TestBarycentricAtVertices(t *testing.T) {
	tri := unitTriangle()

	for i := 0; i < 3; i++ {
		t3 := tri.BarycentricCoordinates(tri.Vertex(i))
		for k := 0; k < 3; k++ {
			expected := 0.0
			if k == i {
				expected = 1.0
			}
			assert.InDelta(t, expected, t3[k], 1.e-14)
		}
	}
}

func TestDegenerateTriangle(t *testing.T) {
	var tri Triangle
	tri.Reinit(Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{2, 0, 0})

	assert.Equal(t, 0.0, tri.Area())

	// Barycentric queries must not divide by zero.
	t3 := tri.BarycentricCoordinates(Point3{0.5, 0, 0})
	assert.Equal(t, [3]float64{1, 0, 0}, t3)

	// The closest point falls back to the edge search and stays on the
	// collapsed triangle.
	pc := tri.ClosestTrianglePoint(Point3{0.5, 1, 0})
	assert.InDelta(t, 0.5, pc[0], 1.e-14)
	assert.InDelta(t, 0, pc[1], 1.e-14)
}
