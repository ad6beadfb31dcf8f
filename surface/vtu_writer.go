package surface

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// WriteVTU writes the surface mesh and every field (cell scalars, cell
// vectors, point scalars) to a VTU file in ASCII, using a fixed
// high-precision scientific representation for floating values so that a
// write/read round trip reproduces the data. Fields are emitted in sorted
// name order.
func (si *SurfaceInterpolator3D) WriteVTU(fileName string) error {
	start := time.Now()
	fmt.Printf("Saving to '%s'", fileName)

	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	nPoints := len(si.Points)
	nTriangles := len(si.Triangles)

	fmt.Fprintf(w, "<?xml version=\"1.0\"?>\n"+
		"<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n"+
		"<UnstructuredGrid>\n"+
		"<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n",
		nPoints, nTriangles)

	fmt.Fprintf(w, "<CellData>\n")
	for _, name := range fieldNames(si.CellFields) {
		fmt.Fprintf(w, "<DataArray type=\"Float64\" Name=\"%s\" format=\"ascii\">\n", name)
		for _, x := range si.CellFields[name] {
			fmt.Fprintf(w, "%.14e ", x)
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
	}
	for _, name := range fieldNames(si.CellVectorFields) {
		fmt.Fprintf(w, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"3\" format=\"ascii\">\n", name)
		for _, p := range si.CellVectorFields[name] {
			fmt.Fprintf(w, "%.14e %.14e %.14e\n", p[0], p[1], p[2])
		}
		fmt.Fprintf(w, "</DataArray>\n")
	}
	fmt.Fprintf(w, "</CellData>\n")

	fmt.Fprintf(w, "<PointData>\n")
	for _, name := range fieldNames(si.PointFields) {
		fmt.Fprintf(w, "<DataArray type=\"Float64\" Name=\"%s\" format=\"ascii\">\n", name)
		for _, x := range si.PointFields[name] {
			fmt.Fprintf(w, "%.14e ", x)
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
	}
	fmt.Fprintf(w, "</PointData>\n")

	fmt.Fprintf(w, "<Points>\n")
	fmt.Fprintf(w, "<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, p := range si.Points {
		fmt.Fprintf(w, "%.14e %.14e %.14e\n", p[0], p[1], p[2])
	}
	fmt.Fprintf(w, "</DataArray>\n")
	fmt.Fprintf(w, "</Points>\n")

	fmt.Fprintf(w, "<Cells>\n")

	fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, v := range si.Triangles {
		fmt.Fprintf(w, "%d %d %d\n", v[0], v[1], v[2])
	}
	fmt.Fprintf(w, "</DataArray>\n")

	fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := 0; i < nTriangles; i++ {
		fmt.Fprintf(w, "%d ", 3*(i+1))
	}
	fmt.Fprintf(w, "\n</DataArray>\n")

	fmt.Fprintf(w, "<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for i := 0; i < nTriangles; i++ {
		fmt.Fprintf(w, "5 ") // VTK_TRIANGLE
	}
	fmt.Fprintf(w, "\n</DataArray>\n")

	fmt.Fprintf(w, "</Cells>\n")

	fmt.Fprintf(w, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf(" %s\n", formatTime(start))

	return nil
}
