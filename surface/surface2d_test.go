package surface

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macplas/surfinterp/geometry"
)

func threePointLine() *SurfaceInterpolator2D {
	si := NewSurfaceInterpolator2D()
	si.SetPoints([]geometry.Point2{{0, 0}, {1, 0}, {2, 0}})
	if err := si.SetField("q", []float64{0, 10, 20}); err != nil {
		panic(err)
	}
	return si
}

func TestInterpolate2D(t *testing.T) {
	si := threePointLine()

	targets := []geometry.Point2{
		{0.5, 0},  // mid first segment
		{1.5, 0},  // mid second segment
		{-1, 0},   // outside the range, clamps to the first endpoint
		{2.5, 0},  // outside the other end
		{0.5, 10}, // far off the line, still projects onto it
	}

	values, err := si.Interpolate("q", targets, allTrue(len(targets)))
	require.NoError(t, err)

	assert.InDelta(t, 5, values.AtVec(0), 1.e-13)
	assert.InDelta(t, 15, values.AtVec(1), 1.e-13)
	assert.InDelta(t, 0, values.AtVec(2), 1.e-13)
	assert.InDelta(t, 20, values.AtVec(3), 1.e-13)
	assert.InDelta(t, 5, values.AtVec(4), 1.e-13)
}

func TestInterpolate2DMasked(t *testing.T) {
	si := threePointLine()

	values, err := si.Interpolate("q", []geometry.Point2{{0.5, 0}}, make([]bool, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, values.AtVec(0))
}

func TestInterpolate2DUnknownField(t *testing.T) {
	si := threePointLine()

	_, err := si.Interpolate("nope", []geometry.Point2{{0, 0}}, allTrue(1))
	assert.ErrorContains(t, err, "'nope' does not exist")
}

func TestInterpolate2DEmptyLine(t *testing.T) {
	si := NewSurfaceInterpolator2D()
	si.Fields["q"] = []float64{}

	_, err := si.Interpolate("q", []geometry.Point2{{1, 2}}, allTrue(1))
	assert.ErrorContains(t, err, "interpolation at point (1, 2) failed")
}

func TestInterpolateXYZ(t *testing.T) {
	// vertical boundary at r=1
	si := NewSurfaceInterpolator2D()
	si.SetPoints([]geometry.Point2{{1, 0}, {1, 1}})
	require.NoError(t, si.SetField("q", []float64{0, 10}))

	// (0.6, 0.8, 0.5) has cylindrical radius 1 and z=0.5
	values, err := si.InterpolateXYZ("q", []geometry.Point3{{0.6, 0.8, 0.5}}, allTrue(1))
	require.NoError(t, err)

	assert.InDelta(t, 5, values.AtVec(0), 1.e-13)
}

func TestReadTXT(t *testing.T) {
	content := `r[m] z[m] q T
0 0 0 100
1 0 10 200
2 0 20 300
`
	si := NewSurfaceInterpolator2D()
	require.NoError(t, si.ReadTXT(writeTempFile(t, "boundary.txt", content)))

	assert.Equal(t, []geometry.Point2{{0, 0}, {1, 0}, {2, 0}}, si.Points)

	q, err := si.Field("q")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, q)

	T, err := si.Field("T")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300}, T)

	values, err := si.Interpolate("q", []geometry.Point2{{0.5, 0}}, allTrue(1))
	require.NoError(t, err)
	assert.InDelta(t, 5, values.AtVec(0), 1.e-13)
}

func TestReadTXTBadRow(t *testing.T) {
	content := `r z q
0 0 1
1 0
`
	si := NewSurfaceInterpolator2D()
	err := si.ReadTXT(writeTempFile(t, "bad.txt", content))
	assert.ErrorContains(t, err, "row has 2 columns, expected 3")
}

func TestReadTXTMissingFile(t *testing.T) {
	si := threePointLine()

	err := si.ReadTXT(filepath.Join(t.TempDir(), "none.txt"))
	assert.NoError(t, err)
	assert.Empty(t, si.Points)
	assert.Empty(t, si.Fields)
}

func TestSetPointsDropsMismatchedFields(t *testing.T) {
	si := threePointLine()

	si.SetPoints([]geometry.Point2{{0, 0}, {1, 0}})

	_, err := si.Field("q")
	assert.ErrorContains(t, err, "'q' does not exist")
}

func TestAddPoint(t *testing.T) {
	si := threePointLine()

	// a value for every existing field is required
	err := si.AddPoint(geometry.Point2{3, 0}, nil)
	assert.ErrorContains(t, err, "no value supplied for field 'q'")
	assert.Len(t, si.Points, 3)

	require.NoError(t, si.AddPoint(geometry.Point2{3, 0}, map[string]float64{"q": 30}))
	assert.Len(t, si.Points, 4)

	values, err := si.Interpolate("q", []geometry.Point2{{2.5, 0}}, allTrue(1))
	require.NoError(t, err)
	assert.InDelta(t, 25, values.AtVec(0), 1.e-13)
}

func TestProject(t *testing.T) {
	si := threePointLine()

	p := si.Project(geometry.Point2{0.5, 2})
	assert.InDelta(t, 0.5, p[0], 1.e-14)
	assert.InDelta(t, 0, p[1], 1.e-14)

	// beyond the line ends the projection clamps to the endpoints
	p = si.Project(geometry.Point2{-3, 1})
	assert.Equal(t, geometry.Point2{0, 0}, p)

	p = si.Project(geometry.Point2{5, -1})
	assert.Equal(t, geometry.Point2{2, 0}, p)
}
