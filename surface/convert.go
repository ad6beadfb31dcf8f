package surface

import (
	"errors"
	"fmt"
	"time"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ErrUnsupportedConversion is returned by Convert for any combination of
// field types other than cell->point or point->cell.
var ErrUnsupportedConversion = errors.New(
	"unsupported combination of source and target field types")

// Convert converts a field between the cell and point domains. If
// targetName is empty it is set to sourceName, so a conversion may
// overwrite a field of the same name in the other domain. The target
// field is added to the interpolator (or overwritten); the source field
// is left untouched.
func (si *SurfaceInterpolator3D) Convert(sourceType FieldType, sourceName string,
	targetType FieldType, targetName string) error {
	if targetName == "" {
		targetName = sourceName
	}

	switch {
	case sourceType == CellField && targetType == PointField:
		return si.cellToPoint(sourceName, targetName)
	case sourceType == PointField && targetType == CellField:
		return si.pointToCell(sourceName, targetName)
	default:
		return ErrUnsupportedConversion
	}
}

// cellToPoint sets each point value to the arithmetic mean of the source
// cell values over all triangles referencing that point. Points touched
// by no triangle keep the value 0. The averaging operator is assembled
// once as a sparse matrix and applied as a matrix-vector product.
func (si *SurfaceInterpolator3D) cellToPoint(sourceName, targetName string) error {
	start := time.Now()
	fmt.Printf("Converting field '%s' from cell to point", sourceName)

	sourceField, err := si.Field(CellField, sourceName)
	if err != nil {
		return err
	}

	nPoints := len(si.Points)
	nTriangles := len(si.Triangles)

	if nPoints == 0 || nTriangles == 0 {
		si.PointFields[targetName] = make([]float64, nPoints)
		fmt.Printf(" %s\n", formatTime(start))
		return nil
	}

	count := make([]int, nPoints)
	for _, v := range si.Triangles {
		for _, id := range v {
			count[id]++
		}
	}

	op := sparse.NewDOK(nPoints, nTriangles)
	for i, v := range si.Triangles {
		for _, id := range v {
			// accumulate, in case a triangle row repeats a vertex
			op.Set(id, i, op.At(id, i)+1/float64(count[id]))
		}
	}

	target := mat.NewVecDense(nPoints, nil)
	target.MulVec(op.ToCSR(), mat.NewVecDense(nTriangles, sourceField))

	si.PointFields[targetName] = target.RawVector().Data

	fmt.Printf(" %s\n", formatTime(start))
	return nil
}

// pointToCell sets each cell value to the arithmetic mean of the source
// values at the triangle's three vertices.
func (si *SurfaceInterpolator3D) pointToCell(sourceName, targetName string) error {
	start := time.Now()
	fmt.Printf("Converting field '%s' from point to cell", sourceName)

	sourceField, err := si.Field(PointField, sourceName)
	if err != nil {
		return err
	}

	nPoints := len(si.Points)
	nTriangles := len(si.Triangles)

	if nPoints == 0 || nTriangles == 0 {
		si.CellFields[targetName] = make([]float64, nTriangles)
		fmt.Printf(" %s\n", formatTime(start))
		return nil
	}

	op := sparse.NewDOK(nTriangles, nPoints)
	for i, v := range si.Triangles {
		for _, id := range v {
			op.Set(i, id, op.At(i, id)+1.0/3.0)
		}
	}

	target := mat.NewVecDense(nTriangles, nil)
	target.MulVec(op.ToCSR(), mat.NewVecDense(nPoints, sourceField))

	si.CellFields[targetName] = target.RawVector().Data

	fmt.Printf(" %s\n", formatTime(start))
	return nil
}
