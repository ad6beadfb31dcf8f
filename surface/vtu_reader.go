package surface

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/macplas/surfinterp/geometry"
)

// ReadVTU reads a triangulated surface with fields from a VTU
// (unstructured-grid XML) file written in ASCII. Like ReadVTK, all state
// is cleared first and a missing file only prints a message. The file is
// processed as a whitespace token stream: NumberOfPoints/NumberOfCells
// attributes size the containers, <PointData>/<CellData>/<Points>/<Cells>
// sections switch the active domain and every <DataArray> is collected
// and validated against the expected cardinality.
func (si *SurfaceInterpolator3D) ReadVTU(fileName string) error {
	start := time.Now()

	si.Clear()

	file, err := os.Open(fileName)
	if err != nil {
		fmt.Printf("Could not open '%s'\n", fileName)
		return nil
	}
	defer file.Close()
	fmt.Printf("Reading '%s'", fileName)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	var (
		dataType   string // active section tag
		dataName   string // Name attribute of the current DataArray
		components = 1
		dataStart  bool
	)

	for scanner.Scan() {
		s := scanner.Text()

		// get the number of points and cells
		if strings.HasPrefix(s, "NumberOfPoints=") || strings.HasPrefix(s, "NumberOfCells=") {
			l := strings.Split(s, "\"")
			if len(l) < 2 {
				return fmt.Errorf("%s: malformed attribute '%s'", fileName, s)
			}

			n, err := strconv.Atoi(l[1])
			if err != nil {
				return fmt.Errorf("%s: malformed attribute '%s'", fileName, s)
			}

			if l[0] == "NumberOfPoints=" {
				si.Points = make([]geometry.Point3, n)
			} else {
				si.Triangles = make([][3]int, n)
			}
			continue
		}

		// detect cell and point data (also points and cells)
		if strings.HasPrefix(s, "<Cell") || strings.HasPrefix(s, "<Point") {
			dataType = s
		}

		if strings.HasPrefix(s, "Name=") {
			l := strings.Split(s, "\"")
			if len(l) < 2 {
				return fmt.Errorf("%s: malformed attribute '%s'", fileName, s)
			}
			dataName = l[1]
		}

		if strings.HasPrefix(s, "NumberOfComponents=") {
			l := strings.Split(s, "\"")
			if len(l) < 2 {
				return fmt.Errorf("%s: malformed attribute '%s'", fileName, s)
			}
			if components, err = strconv.Atoi(l[1]); err != nil {
				return fmt.Errorf("%s: malformed attribute '%s'", fileName, s)
			}
		}

		if s == "<DataArray" {
			dataStart = true
			components = 1
		}

		// <DataArray ...> has been closed, now read until </DataArray>
		if dataStart && strings.HasSuffix(s, ">") && s != "<DataArray" {
			var data []string
			closed := false

			for scanner.Scan() {
				tok := scanner.Text()
				if tok == "</DataArray>" {
					closed = true
					break
				}
				data = append(data, tok)
			}
			if !closed {
				return fmt.Errorf("%s: unterminated DataArray '%s'", fileName, dataName)
			}

			if err := si.storeDataArray(fileName, dataType, dataName, components, data); err != nil {
				return err
			}

			dataStart = false
			dataName = ""
			components = 1
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %v", fileName, err)
	}

	fmt.Printf(" %s\n", formatTime(start))

	si.Info()
	si.Preprocess()

	return nil
}

// storeDataArray validates a completed DataArray against the expected
// cardinality of its section and stores it in the matching container.
func (si *SurfaceInterpolator3D) storeDataArray(fileName, dataType, dataName string,
	components int, data []string) error {
	n := len(data)

	parseFloats := func() ([]float64, error) {
		f := make([]float64, n)
		for i, tok := range data {
			x, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid value '%s' in '%s'",
					fileName, tok, dataName)
			}
			f[i] = x
		}
		return f, nil
	}

	mismatch := func(expected int) error {
		return fmt.Errorf("%s: %s array '%s' has %d values, expected %d",
			fileName, dataType, dataName, n, expected)
	}

	switch {
	case dataType == "<CellData>" && components == 3: // cell vector field
		if n != 3*len(si.Triangles) {
			return mismatch(3 * len(si.Triangles))
		}
		f, err := parseFloats()
		if err != nil {
			return err
		}
		vf := make([]geometry.Point3, n/3)
		for i := range vf {
			vf[i] = geometry.Point3{f[3*i], f[3*i+1], f[3*i+2]}
		}
		si.CellVectorFields[dataName] = vf

	case dataType == "<CellData>": // cell field
		if n != len(si.Triangles) {
			return mismatch(len(si.Triangles))
		}
		f, err := parseFloats()
		if err != nil {
			return err
		}
		si.CellFields[dataName] = f

	case dataType == "<PointData>": // point field
		if n != len(si.Points) {
			return mismatch(len(si.Points))
		}
		f, err := parseFloats()
		if err != nil {
			return err
		}
		si.PointFields[dataName] = f

	case dataType == "<Points>": // point coordinates
		if n != 3*len(si.Points) {
			return mismatch(3 * len(si.Points))
		}
		f, err := parseFloats()
		if err != nil {
			return err
		}
		for i := range si.Points {
			si.Points[i] = geometry.Point3{f[3*i], f[3*i+1], f[3*i+2]}
		}

	case dataType == "<Cells>" && dataName == "connectivity": // only connectivity
		if n != 3*len(si.Triangles) {
			return mismatch(3 * len(si.Triangles))
		}
		for i := range si.Triangles {
			for d := 0; d < 3; d++ {
				v, err := strconv.Atoi(data[3*i+d])
				if err != nil {
					return fmt.Errorf("%s: invalid vertex index '%s'",
						fileName, data[3*i+d])
				}
				si.Triangles[i][d] = v
			}
		}
	}

	return nil
}
