// Package geometry provides the geometric primitives used by the surface
// interpolators: 3D/2D point types, closest-point-on-segment helpers and a
// cached Triangle with projection and barycentric-coordinate queries.
package geometry

import "math"

// Point3 is a point or vector in 3D space (x, y, z).
type Point3 [3]float64

func (p Point3) Add(q Point3) Point3 {
	return Point3{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

func (p Point3) Sub(q Point3) Point3 {
	return Point3{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

func (p Point3) Scale(a float64) Point3 {
	return Point3{a * p[0], a * p[1], a * p[2]}
}

func (p Point3) Dot(q Point3) float64 {
	return p[0]*q[0] + p[1]*q[1] + p[2]*q[2]
}

func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p[1]*q[2] - p[2]*q[1],
		p[2]*q[0] - p[0]*q[2],
		p[0]*q[1] - p[1]*q[0],
	}
}

func (p Point3) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// NormSquared avoids the square root when only comparisons are needed.
func (p Point3) NormSquared() float64 {
	return p.Dot(p)
}

// Point2 is a point in the plane. For axisymmetric boundaries the two
// coordinates are the cylindrical (r, z).
type Point2 [2]float64

func (p Point2) Add(q Point2) Point2 {
	return Point2{p[0] + q[0], p[1] + q[1]}
}

func (p Point2) Sub(q Point2) Point2 {
	return Point2{p[0] - q[0], p[1] - q[1]}
}

func (p Point2) Scale(a float64) Point2 {
	return Point2{a * p[0], a * p[1]}
}

func (p Point2) Dot(q Point2) float64 {
	return p[0]*q[0] + p[1]*q[1]
}

func (p Point2) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point2) NormSquared() float64 {
	return p.Dot(p)
}
