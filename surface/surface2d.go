package surface

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/macplas/surfinterp/geometry"
)

// SurfaceInterpolator2D holds a polyline boundary with named point fields.
// The source point data are defined on an ordered point sequence: segment
// i connects points i and i+1, and callers are expected to keep the
// sequence sorted along the traversal coordinate so that the boundary can
// be extended by appending a new endpoint. Used for axisymmetric (r,z)
// boundaries.
type SurfaceInterpolator2D struct {
	// Points (r,z) or (x,y), in polyline order
	Points []geometry.Point2

	// Fields defined on points
	Fields map[string][]float64
}

func NewSurfaceInterpolator2D() *SurfaceInterpolator2D {
	si := &SurfaceInterpolator2D{}
	si.Clear()
	return si
}

// Clear empties the point sequence and every field.
func (si *SurfaceInterpolator2D) Clear() {
	si.Points = nil
	si.Fields = make(map[string][]float64)
}

// Field returns the named point field.
func (si *SurfaceInterpolator2D) Field(fieldName string) ([]float64, error) {
	f, ok := si.Fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("field '%s' does not exist", fieldName)
	}
	return f, nil
}

// SetField attaches (or replaces) a point field. The value count must
// match the current number of points.
func (si *SurfaceInterpolator2D) SetField(fieldName string, values []float64) error {
	if len(values) != len(si.Points) {
		return fmt.Errorf("field '%s' has %d values, expected %d",
			fieldName, len(values), len(si.Points))
	}
	si.Fields[fieldName] = values
	return nil
}

// SetPoints replaces the tracked boundary with an externally supplied,
// sorted point sequence. Fields whose length no longer matches the new
// point count are dropped to keep the size invariant.
func (si *SurfaceInterpolator2D) SetPoints(points []geometry.Point2) {
	si.Points = append([]geometry.Point2(nil), points...)

	for name, f := range si.Fields {
		if len(f) != len(si.Points) {
			delete(si.Fields, name)
		}
	}
}

// AddPoint extends the polyline by one endpoint, e.g. as a simulated
// interface advances. One value per existing field must be supplied.
func (si *SurfaceInterpolator2D) AddPoint(p geometry.Point2, values map[string]float64) error {
	for name := range si.Fields {
		if _, ok := values[name]; !ok {
			return fmt.Errorf("no value supplied for field '%s'", name)
		}
	}

	si.Points = append(si.Points, p)
	for name := range si.Fields {
		si.Fields[name] = append(si.Fields[name], values[name])
	}
	return nil
}

// Project returns the point of the polyline which is closest to p.
func (si *SurfaceInterpolator2D) Project(p geometry.Point2) geometry.Point2 {
	nPoints := len(si.Points)

	switch nPoints {
	case 0:
		return p
	case 1:
		return si.Points[0]
	}

	var pFound geometry.Point2
	d2Min := -1.0

	for j := 0; j+1 < nPoints; j++ {
		pTrial := geometry.ClosestSegmentPoint2(p, si.Points[j], si.Points[j+1])

		d2 := pTrial.Sub(p).NormSquared()
		if d2 < d2Min || d2Min < 0 {
			d2Min = d2
			pFound = pTrial
		}
	}

	return pFound
}

// Interpolate evaluates the named field at each target point whose marker
// is true, scanning all consecutive point pairs for the segment with the
// smallest squared distance and blending the two endpoint values with the
// segment barycentric weights. The returned vector is aligned with
// targetPoints; unmasked entries are left at zero.
func (si *SurfaceInterpolator2D) Interpolate(fieldName string,
	targetPoints []geometry.Point2, markers []bool) (*mat.VecDense, error) {
	start := time.Now()
	fmt.Printf("Interpolating field '%s'", fieldName)

	sourceField, err := si.Field(fieldName)
	if err != nil {
		return nil, err
	}

	nPoints := len(si.Points)
	nValues := len(targetPoints)
	if nValues == 0 {
		return &mat.VecDense{}, nil
	}
	targetValues := mat.NewVecDense(nValues, nil)

	for i, p := range targetPoints {
		if !markers[i] {
			continue
		}

		var pFound geometry.Point2
		jFound := 0
		d2Min := -1.0

		// the number of segments is nPoints-1
		for j := 0; j+1 < nPoints; j++ {
			pTrial := geometry.ClosestSegmentPoint2(p, si.Points[j], si.Points[j+1])

			d2 := pTrial.Sub(p).NormSquared()
			if d2 < d2Min || d2Min < 0 {
				d2Min = d2
				pFound = pTrial
				jFound = j
			}
		}

		if d2Min < 0 {
			return nil, fmt.Errorf("interpolation at point (%g, %g) failed",
				p[0], p[1])
		}

		t2 := geometry.SegmentBarycentric2(pFound, si.Points[jFound], si.Points[jFound+1])

		var val float64
		for k := 0; k < 2; k++ {
			val += t2[k] * sourceField[jFound+k]
		}
		targetValues.SetVec(i, val)
	}

	fmt.Printf(" %s\n", formatTime(start))

	return targetValues, nil
}

// InterpolateXYZ is the same as Interpolate for target points given in 3D
// Cartesian coordinates, which are mapped to the cylindrical (r,z) plane
// as (hypot(x,y), z).
func (si *SurfaceInterpolator2D) InterpolateXYZ(fieldName string,
	targetPoints []geometry.Point3, markers []bool) (*mat.VecDense, error) {
	points2D := make([]geometry.Point2, len(targetPoints))

	for i, p := range targetPoints {
		points2D[i] = geometry.Point2{math.Hypot(p[0], p[1]), p[2]}
	}

	return si.Interpolate(fieldName, points2D, markers)
}

// Info prints the boundary and field sizes.
func (si *SurfaceInterpolator2D) Info() {
	fmt.Printf("n_points:%d\n", len(si.Points))

	for _, name := range fieldNames(si.Fields) {
		fmt.Printf("PointData %s %d\n", name, len(si.Fields[name]))
	}
}
