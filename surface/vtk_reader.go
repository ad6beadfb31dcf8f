package surface

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/macplas/surfinterp/geometry"
)

// ReadVTK reads a triangulated surface with fields from a legacy-format
// VTK file. All previous state is cleared first. A missing file is not an
// error: a message is printed and the interpolator is left empty, since
// callers may tolerate absent optional boundary data. Unrecognized
// keywords are skipped.
func (si *SurfaceInterpolator3D) ReadVTK(fileName string) error {
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

	next := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%s: unexpected end of file", fileName)
		}
		return scanner.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid integer '%s'", fileName, tok)
		}
		return n, nil
	}
	nextFloat := func() (float64, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid value '%s'", fileName, tok)
		}
		return x, nil
	}

	// readScalars reads one value per entity of the active data domain.
	readScalars := func(dataType string) ([]float64, error) {
		n := len(si.Points)
		if dataType == "CELL_DATA" {
			n = len(si.Triangles)
		}
		f := make([]float64, n)
		for i := range f {
			if f[i], err = nextFloat(); err != nil {
				return nil, err
			}
		}
		return f, nil
	}

	var dataType string // CELL_DATA or POINT_DATA

	for scanner.Scan() {
		switch s := scanner.Text(); s {
		case "POINTS":
			n, err := nextInt()
			if err != nil {
				return err
			}
			if _, err = next(); err != nil { // data type
				return err
			}

			si.Points = make([]geometry.Point3, n)
			for i := range si.Points {
				for d := 0; d < 3; d++ {
					if si.Points[i][d], err = nextFloat(); err != nil {
						return err
					}
				}
			}

		case "CELLS":
			n, err := nextInt()
			if err != nil {
				return err
			}
			if _, err = next(); err != nil { // total size
				return err
			}

			si.Triangles = make([][3]int, n)
			for i := range si.Triangles {
				nVerts, err := nextInt()
				if err != nil {
					return err
				}
				if nVerts != 3 {
					return fmt.Errorf("%s: triangle expected, numPoints=%d found",
						fileName, nVerts)
				}
				for d := 0; d < 3; d++ {
					if si.Triangles[i][d], err = nextInt(); err != nil {
						return err
					}
				}
			}

		case "CELL_DATA", "POINT_DATA":
			// the entity count token that follows is skipped as unrecognized
			dataType = s

		case "SCALARS":
			dataName, err := next()
			if err != nil {
				return err
			}
			// data type, LOOKUP_TABLE keyword and table name
			for k := 0; k < 3; k++ {
				if _, err = next(); err != nil {
					return err
				}
			}

			f, err := readScalars(dataType)
			if err != nil {
				return err
			}
			if dataType == "CELL_DATA" {
				si.CellFields[dataName] = f
			} else {
				si.PointFields[dataName] = f
			}

		case "FIELD":
			if _, err := next(); err != nil { // FieldData
				return err
			}
			nFields, err := nextInt()
			if err != nil {
				return err
			}

			for k := 0; k < nFields; k++ {
				dataName, err := next()
				if err != nil {
					return err
				}
				// components, tuples, data type
				for j := 0; j < 3; j++ {
					if _, err = next(); err != nil {
						return err
					}
				}

				f, err := readScalars(dataType)
				if err != nil {
					return err
				}
				if dataType == "CELL_DATA" {
					si.CellFields[dataName] = f
				} else {
					si.PointFields[dataName] = f
				}
			}
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
