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

// ReadTXT reads a polyline boundary with fields from a whitespace
// delimited text table. The header row names the columns: the first two
// are always the coordinates, the rest are field names. Each following
// row holds one point and one value per field; row order defines the
// point order and is expected to be sorted along the traversal
// coordinate by the producer. All previous state is cleared first and a
// missing file only prints a message.
func (si *SurfaceInterpolator2D) ReadTXT(fileName string) error {
	start := time.Now()

	si.Clear()

	file, err := os.Open(fileName)
	if err != nil {
		fmt.Printf("Could not open '%s'\n", fileName)
		return nil
	}
	defer file.Close()
	fmt.Printf("Reading '%s'", fileName)

	var (
		colNames  []string
		colValues [][]float64
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cols := strings.Fields(line)

		if colNames == nil {
			// the first two columns are the coordinates, then field names
			if len(cols) < 2 {
				return fmt.Errorf("%s: header must name at least the two coordinate columns, got '%s'",
					fileName, line)
			}
			colNames = cols[2:]
			colValues = make([][]float64, len(colNames))
			continue
		}

		if len(cols) != 2+len(colNames) {
			return fmt.Errorf("%s: row has %d columns, expected %d: '%s'",
				fileName, len(cols), 2+len(colNames), line)
		}

		var p geometry.Point2
		for d := 0; d < 2; d++ {
			if p[d], err = strconv.ParseFloat(cols[d], 64); err != nil {
				return fmt.Errorf("%s: invalid coordinate '%s'", fileName, cols[d])
			}
		}
		si.Points = append(si.Points, p)

		for i := range colNames {
			val, err := strconv.ParseFloat(cols[2+i], 64)
			if err != nil {
				return fmt.Errorf("%s: invalid value '%s' in field '%s'",
					fileName, cols[2+i], colNames[i])
			}
			colValues[i] = append(colValues[i], val)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %v", fileName, err)
	}

	for i, name := range colNames {
		si.Fields[name] = colValues[i]
	}

	fmt.Printf(" %s\n", formatTime(start))

	si.Info()

	return nil
}
