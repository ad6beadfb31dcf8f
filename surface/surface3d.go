// Package surface interpolates named scalar and vector fields defined on an
// external surface mesh onto arbitrary target points. It is used to transfer
// boundary conditions between different meshes: the source data live either
// on a 3D triangulated surface (SurfaceInterpolator3D) or on a 2D polyline
// boundary (SurfaceInterpolator2D).
package surface

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/macplas/surfinterp/geometry"
)

// PrunePredicate reports whether a cached triangle can be skipped during
// the first nearest-triangle search pass without computing the exact
// closest point. The fallback pass never prunes, so any predicate leaves
// the observable result unchanged: the globally closest triangle is always
// found on a non-empty mesh.
type PrunePredicate func(p geometry.Point3, tri *geometry.Triangle) bool

// defaultPrune rejects triangles whose center is farther from the target
// than 3x the triangle's longest side, a cheap bounding-sphere test.
func defaultPrune(p geometry.Point3, tri *geometry.Triangle) bool {
	return p.Sub(tri.Center()).Norm() > 3*tri.LongestSide()
}

// SurfaceInterpolator3D holds a triangulated surface with named fields.
// The source cell or point data are defined on the surface triangles and
// points; Interpolate answers field queries at arbitrary target points.
//
// Points and Triangles index each other by position: triangle row i refers
// to three point indices. Every field slice must have the length of its
// domain (len(Triangles) for cell fields, len(Points) for point fields).
type SurfaceInterpolator3D struct {
	// Points (x,y,z)
	Points []geometry.Point3

	// Triangles is the connectivity matrix (v0,v1,v2) - only triangles
	Triangles [][3]int

	// CellFields and PointFields are the named scalar fields
	CellFields  map[string][]float64
	PointFields map[string][]float64

	// CellVectorFields holds derived diagnostic vector data (center, normal)
	CellVectorFields map[string][]geometry.Point3

	// Prune skips triangles during the first search pass; nil selects the
	// built-in bounding-sphere test
	Prune PrunePredicate

	// precalculated triangle areas, normals, centers etc.
	triangleCache []geometry.Triangle
}

func NewSurfaceInterpolator3D() *SurfaceInterpolator3D {
	si := &SurfaceInterpolator3D{}
	si.Clear()
	return si
}

// Clear empties every container, returning the interpolator to its
// freshly constructed state.
func (si *SurfaceInterpolator3D) Clear() {
	si.Points = nil
	si.Triangles = nil
	si.CellFields = make(map[string][]float64)
	si.PointFields = make(map[string][]float64)
	si.CellVectorFields = make(map[string][]geometry.Point3)
	si.triangleCache = nil
}

// Field returns the named scalar field of the given type.
func (si *SurfaceInterpolator3D) Field(fieldType FieldType, fieldName string) ([]float64, error) {
	fields := si.CellFields
	if fieldType == PointField {
		fields = si.PointFields
	}

	f, ok := fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("field '%s' does not exist", fieldName)
	}
	return f, nil
}

// VectorField returns the named cell vector field. Only cell vector
// fields exist.
func (si *SurfaceInterpolator3D) VectorField(fieldName string) ([]geometry.Point3, error) {
	f, ok := si.CellVectorFields[fieldName]
	if !ok {
		return nil, fmt.Errorf("field '%s' does not exist", fieldName)
	}
	return f, nil
}

// Preprocess rebuilds the triangle cache and the derived cell fields
// (area, longest_side) and cell vector fields (center, normal) from the
// current topology. It must run after any topology change before
// Interpolate is called; the readers invoke it automatically.
func (si *SurfaceInterpolator3D) Preprocess() {
	start := time.Now()
	fmt.Printf("Preprocessing data")

	nTriangles := len(si.Triangles)

	area := make([]float64, nTriangles)
	longestSide := make([]float64, nTriangles)
	center := make([]geometry.Point3, nTriangles)
	normal := make([]geometry.Point3, nTriangles)

	si.triangleCache = make([]geometry.Triangle, nTriangles)

	for i, v := range si.Triangles {
		tri := &si.triangleCache[i]
		tri.Reinit(si.Points[v[0]], si.Points[v[1]], si.Points[v[2]])

		center[i] = tri.Center()
		normal[i] = tri.Normal()
		area[i] = tri.Area()
		longestSide[i] = tri.LongestSide()
	}

	si.CellFields["area"] = area
	si.CellFields["longest_side"] = longestSide
	si.CellVectorFields["center"] = center
	si.CellVectorFields["normal"] = normal

	fmt.Printf(" %s\n", formatTime(start))
}

// Interpolate evaluates the named field at each target point whose marker
// is true. The returned vector is aligned with targetPoints; unmasked
// entries are left at zero. A cell field contributes the value of the
// nearest triangle, a point field the barycentric blend of the three
// vertex values at the projected point.
func (si *SurfaceInterpolator3D) Interpolate(fieldType FieldType, fieldName string,
	targetPoints []geometry.Point3, markers []bool) (*mat.VecDense, error) {
	start := time.Now()
	fmt.Printf("Interpolating field '%s'", fieldName)

	sourceField, err := si.Field(fieldType, fieldName)
	if err != nil {
		return nil, err
	}

	nValues := len(targetPoints)
	if nValues == 0 {
		return &mat.VecDense{}, nil
	}
	targetValues := mat.NewVecDense(nValues, nil)

	for i, p := range targetPoints {
		if !markers[i] {
			continue
		}

		jFound, pFound, found := si.closestTriangle(p)
		if !found {
			return nil, fmt.Errorf("interpolation at point (%g, %g, %g) failed",
				p[0], p[1], p[2])
		}

		switch fieldType {
		case CellField:
			targetValues.SetVec(i, sourceField[jFound])

		case PointField:
			tri := &si.triangleCache[jFound]
			t3 := tri.BarycentricCoordinates(pFound)
			v := si.Triangles[jFound]

			var val float64
			for k := 0; k < 3; k++ {
				val += t3[k] * sourceField[v[k]]
			}
			targetValues.SetVec(i, val)
		}
	}

	fmt.Printf(" %s\n", formatTime(start))

	return targetValues, nil
}

// InterpolateRZ is the same as Interpolate for target points given in 2D
// cylindrical coordinates (r,z), which are mapped to 3D as (r, 0, z).
func (si *SurfaceInterpolator3D) InterpolateRZ(fieldType FieldType, fieldName string,
	targetPoints []geometry.Point2, markers []bool) (*mat.VecDense, error) {
	points3D := make([]geometry.Point3, len(targetPoints))

	for i, p := range targetPoints {
		points3D[i] = geometry.Point3{p[0], 0, p[1]}
	}

	return si.Interpolate(fieldType, fieldName, points3D, markers)
}

// closestTriangle finds the cached triangle minimizing the squared
// distance between p and its closest triangle point. The pruned pass runs
// first; only if it rejects every triangle is the exhaustive fallback
// pass over all triangles performed.
func (si *SurfaceInterpolator3D) closestTriangle(p geometry.Point3) (jFound int, pFound geometry.Point3, found bool) {
	prune := si.Prune
	if prune == nil {
		prune = defaultPrune
	}

	d2Min := -1.0

	scan := func(usePrune bool) {
		for j := range si.triangleCache {
			tri := &si.triangleCache[j]

			if usePrune && prune(p, tri) {
				continue
			}

			pTrial := tri.ClosestTrianglePoint(p)

			d2 := pTrial.Sub(p).NormSquared()
			if d2 < d2Min || d2Min < 0 {
				d2Min = d2
				pFound = pTrial
				jFound = j
			}
		}
	}

	scan(true)
	if d2Min < 0 {
		scan(false)
	}

	return jFound, pFound, d2Min >= 0
}

// Info prints the mesh and field sizes.
func (si *SurfaceInterpolator3D) Info() {
	fmt.Printf("n_points:%d n_triangles:%d\n", len(si.Points), len(si.Triangles))

	for _, name := range fieldNames(si.CellFields) {
		fmt.Printf("CellData %s %d\n", name, len(si.CellFields[name]))
	}

	for _, name := range fieldNames(si.PointFields) {
		fmt.Printf("PointData %s %d\n", name, len(si.PointFields[name]))
	}
}
