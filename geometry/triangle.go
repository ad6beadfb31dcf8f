package geometry

import "math"

// Triangle stores a single surface triangle together with its precalculated
// normal, area, center and longest side. One Triangle per connectivity row
// forms the interpolator's search cache; Reinit fully replaces the cached
// state, so a cache entry is rebuilt simply by calling Reinit again.
type Triangle struct {
	points      [3]Point3
	normal      Point3
	center      Point3
	area        float64
	longestSide float64
}

// Reinit sets the triangle vertices and recomputes the derived geometry.
func (tri *Triangle) Reinit(p0, p1, p2 Point3) {
	tri.points = [3]Point3{p0, p1, p2}

	tri.calculateNormalAndArea()

	tri.center = p0.Add(p1).Add(p2).Scale(1.0 / 3.0)

	tri.longestSide = math.Max(math.Max(p1.Sub(p0).Norm(), p2.Sub(p0).Norm()),
		p1.Sub(p2).Norm())
}

// Vertex returns the i-th triangle vertex.
func (tri *Triangle) Vertex(i int) Point3 {
	return tri.points[i]
}

func (tri *Triangle) Center() Point3 {
	return tri.center
}

// Normal returns the unit normal defined by the vertex winding. For a
// zero-area triangle the unnormalized cross product (the zero vector) is
// returned.
func (tri *Triangle) Normal() Point3 {
	return tri.normal
}

func (tri *Triangle) Area() float64 {
	return tri.area
}

func (tri *Triangle) LongestSide() float64 {
	return tri.longestSide
}

// ClosestTrianglePoint returns the point of the triangle which is closest
// to p. The point is first projected onto the triangle plane; if the
// projection lies inside the triangle it is returned directly, otherwise
// the nearest of the closest points on the three bounding segments is
// selected using squared distances.
func (tri *Triangle) ClosestTrianglePoint(p Point3) Point3 {
	if tri.area > 0 {
		pProj := tri.projectToTrianglePlane(p)

		t3 := tri.BarycentricCoordinates(pProj)

		inside := true
		for _, t := range t3 {
			inside = inside && t >= 0 && t <= 1
		}

		if inside {
			return pProj
		}
	}

	var pClosest Point3
	d2Min := -1.0

	for i := 0; i < 3; i++ {
		pEdge := ClosestSegmentPoint(p, tri.points[i], tri.points[(i+1)%3])
		d2 := p.Sub(pEdge).NormSquared()

		if d2 < d2Min || d2Min < 0 {
			d2Min = d2
			pClosest = pEdge
		}
	}

	return pClosest
}

// BarycentricCoordinates returns the three signed-area ratios of p, which
// is assumed to already lie in the triangle plane. The coordinates sum to 1
// for in-plane points. A degenerate (zero-area) triangle gets the full
// weight on its first vertex instead of dividing by zero.
func (tri *Triangle) BarycentricCoordinates(p Point3) [3]float64 {
	if tri.area == 0 {
		return [3]float64{1, 0, 0}
	}

	return [3]float64{
		tri.signedArea(p, tri.points[1], tri.points[2]) / tri.area,
		tri.signedArea(tri.points[0], p, tri.points[2]) / tri.area,
		tri.signedArea(tri.points[0], tri.points[1], p) / tri.area,
	}
}

func (tri *Triangle) calculateNormalAndArea() {
	n := tri.points[1].Sub(tri.points[0]).Cross(tri.points[2].Sub(tri.points[0]))

	tri.area = 0.5 * n.Norm()

	if tri.area > 0 {
		n = n.Scale(1 / (2 * tri.area))
	}
	tri.normal = n
}

// signedArea uses the triangle's own normal to fix the orientation sign.
func (tri *Triangle) signedArea(p0, p1, p2 Point3) float64 {
	return 0.5 * tri.normal.Dot(p1.Sub(p0).Cross(p2.Sub(p0)))
}

func (tri *Triangle) projectToTrianglePlane(p Point3) Point3 {
	return p.Sub(tri.normal.Scale(tri.normal.Dot(p.Sub(tri.points[0]))))
}
