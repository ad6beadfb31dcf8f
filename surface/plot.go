package surface

import (
	"math"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
)

// AVSTriMesh packs the surface triangulation into an avs TriMesh,
// projected onto the x-z plane, which for axisymmetric boundary data is
// the meridional view.
func AVSTriMesh(si *SurfaceInterpolator3D) graphics2D.TriMesh {
	xy := make([]float32, 2*len(si.Points))
	for i, p := range si.Points {
		xy[2*i+0] = float32(p[0])
		xy[2*i+1] = float32(p[2])
	}

	triVerts := make([][3]int64, len(si.Triangles))
	for k, v := range si.Triangles {
		triVerts[k] = [3]int64{int64(v[0]), int64(v[1]), int64(v[2])}
	}

	return graphics2D.NewTriMesh(xy, triVerts)
}

// boundaryLine packs the polyline into line segment coordinates, one
// segment per consecutive point pair.
func boundaryLine(si *SurfaceInterpolator2D) (line []float32) {
	for j := 0; j+1 < len(si.Points); j++ {
		line = append(line,
			float32(si.Points[j][0]), float32(si.Points[j][1]),
			float32(si.Points[j+1][0]), float32(si.Points[j+1][1]))
	}
	return
}

// PlotSurface displays the surface triangulation. The chart is returned
// so the caller can extend it; the window stays open for the life of the
// process.
func PlotSurface(si *SurfaceInterpolator3D) (chart *chart2d.Chart2D) {
	gm := AVSTriMesh(si)

	xMin, xMax, yMin, yMax := getMinMax(gm.XY)
	chart = chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	chart.AddTriMesh(gm)

	return
}

// PlotBoundary displays the 2D polyline boundary in the (r,z) plane.
func PlotBoundary(si *SurfaceInterpolator2D) (chart *chart2d.Chart2D) {
	line := boundaryLine(si)

	xMin, xMax, yMin, yMax := getMinMax(line)
	chart = chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	chart.AddLine(line, utils2.RED)

	return
}

func getMinMax(XY []float32) (xMin, xMax, yMin, yMax float32) {
	xMin, xMax = float32(math.MaxFloat32), float32(-math.MaxFloat32)
	yMin, yMax = float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for i := 0; i < len(XY)/2; i++ {
		x, y := XY[2*i+0], XY[2*i+1]
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	return
}
