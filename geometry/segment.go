package geometry

import "math"

// ClosestSegmentPoint returns the point on the segment [p0, p1] which is
// closest to p. The projection parameter is clamped to [0, 1] so the result
// always lies on the segment.
func ClosestSegmentPoint(p, p0, p1 Point3) Point3 {
	d := p1.Sub(p0)
	t := d.Dot(p.Sub(p0)) / d.NormSquared()
	t = math.Max(0, math.Min(1, t))

	return p0.Add(d.Scale(t))
}

// SegmentBarycentric returns the two barycentric (linear) weights of p with
// respect to the segment endpoints. t=0 corresponds to the first point p0.
// Unlike ClosestSegmentPoint the parameter is not clamped.
func SegmentBarycentric(p, p0, p1 Point3) [2]float64 {
	d := p1.Sub(p0)
	t := d.Dot(p.Sub(p0)) / d.NormSquared()

	return [2]float64{1 - t, t}
}

// ClosestSegmentPoint2 is the planar version of ClosestSegmentPoint.
func ClosestSegmentPoint2(p, p0, p1 Point2) Point2 {
	d := p1.Sub(p0)
	t := d.Dot(p.Sub(p0)) / d.NormSquared()
	t = math.Max(0, math.Min(1, t))

	return p0.Add(d.Scale(t))
}

// SegmentBarycentric2 is the planar version of SegmentBarycentric.
func SegmentBarycentric2(p, p0, p1 Point2) [2]float64 {
	d := p1.Sub(p0)
	t := d.Dot(p.Sub(p0)) / d.NormSquared()

	return [2]float64{1 - t, t}
}
