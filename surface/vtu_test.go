package surface

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadVTURoundTrip(t *testing.T) {
	si := twoTriangleSquare()
	si.CellFields["q"] = []float64{1.25, -3.5e-4}
	si.PointFields["T"] = []float64{10, 20.5, 30, 1.0 / 3.0}

	path := filepath.Join(t.TempDir(), "surface.vtu")
	require.NoError(t, si.WriteVTU(path))

	si2 := NewSurfaceInterpolator3D()
	require.NoError(t, si2.ReadVTU(path))

	require.Len(t, si2.Points, len(si.Points))
	for i := range si.Points {
		for d := 0; d < 3; d++ {
			assert.InDelta(t, si.Points[i][d], si2.Points[i][d], 1.e-13)
		}
	}

	assert.Equal(t, si.Triangles, si2.Triangles)

	for name, f := range si.CellFields {
		f2, err := si2.Field(CellField, name)
		require.NoError(t, err, name)
		require.Len(t, f2, len(f), name)
		for i := range f {
			assert.InDelta(t, f[i], f2[i], 1.e-13)
		}
	}

	for name, f := range si.PointFields {
		f2, err := si2.Field(PointField, name)
		require.NoError(t, err, name)
		for i := range f {
			assert.InDelta(t, f[i], f2[i], 1.e-13)
		}
	}

	for name, vf := range si.CellVectorFields {
		vf2, err := si2.VectorField(name)
		require.NoError(t, err, name)
		require.Len(t, vf2, len(vf), name)
		for i := range vf {
			for d := 0; d < 3; d++ {
				assert.InDelta(t, vf[i][d], vf2[i][d], 1.e-13, name)
			}
		}
	}
}

func TestReadVTUCellVectorField(t *testing.T) {
	content := `<?xml version="1.0"?>
<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">
<UnstructuredGrid>
<Piece NumberOfPoints="3" NumberOfCells="1">
<CellData>
<DataArray type="Float64" Name="normal" NumberOfComponents="3" format="ascii">
0.0 0.0 1.0
</DataArray>
<DataArray type="Float64" Name="q" format="ascii">
2.5
</DataArray>
</CellData>
<Points>
<DataArray type="Float64" NumberOfComponents="3" format="ascii">
0 0 0 1 0 0 0 1 0
</DataArray>
</Points>
<Cells>
<DataArray type="Int32" Name="connectivity" format="ascii">
0 1 2
</DataArray>
</Cells>
</Piece>
</UnstructuredGrid>
</VTKFile>
`
	si := NewSurfaceInterpolator3D()
	require.NoError(t, si.ReadVTU(writeTempFile(t, "vector.vtu", content)))

	vf, err := si.VectorField("normal")
	require.NoError(t, err)
	require.Len(t, vf, 1)
	assert.Equal(t, 1.0, vf[0][2])

	q, err := si.Field(CellField, "q")
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, q)
}

func TestReadVTUSizeMismatch(t *testing.T) {
	content := `<?xml version="1.0"?>
<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">
<UnstructuredGrid>
<Piece NumberOfPoints="3" NumberOfCells="2">
<CellData>
<DataArray type="Float64" Name="q" format="ascii">
1.0
</DataArray>
</CellData>
</Piece>
</UnstructuredGrid>
</VTKFile>
`
	si := NewSurfaceInterpolator3D()
	err := si.ReadVTU(writeTempFile(t, "bad.vtu", content))
	assert.ErrorContains(t, err, "'q' has 1 values, expected 2")
}

func TestReadVTUUnterminatedDataArray(t *testing.T) {
	content := `<Piece NumberOfPoints="1" NumberOfCells="0">
<PointData>
<DataArray type="Float64" Name="T" format="ascii">
1.0 2.0
`
	si := NewSurfaceInterpolator3D()
	err := si.ReadVTU(writeTempFile(t, "trunc.vtu", content))
	assert.ErrorContains(t, err, "unterminated DataArray")
}

func TestReadVTUMissingFile(t *testing.T) {
	si := NewSurfaceInterpolator3D()
	assert.NoError(t, si.ReadVTU(filepath.Join(t.TempDir(), "none.vtu")))
	assert.Empty(t, si.Points)
}
