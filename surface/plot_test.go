package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAVSTriMesh(t *testing.T) {
	si := twoTriangleSquare()

	gm := AVSTriMesh(si)

	// x-z projection of the packed coordinates
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 0, 1, 0}, gm.XY)
	assert.Equal(t, [][3]int64{{0, 1, 2}, {1, 3, 2}}, gm.TriVerts)

	xMin, xMax, yMin, yMax := getMinMax(gm.XY)
	assert.Equal(t, float32(0), xMin)
	assert.Equal(t, float32(1), xMax)
	assert.Equal(t, float32(0), yMin)
	assert.Equal(t, float32(0), yMax)
}

func TestBoundaryLine(t *testing.T) {
	si := threePointLine()

	line := boundaryLine(si)
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 0, 2, 0}, line)
}
