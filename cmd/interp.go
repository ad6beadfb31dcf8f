/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/macplas/surfinterp/InputParameters"
	"github.com/macplas/surfinterp/geometry"
	"github.com/macplas/surfinterp/surface"
)

type InterpModel struct {
	TaskFile string
	Plot     bool
	Profile  bool
}

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate surface fields onto target points",
	Long: `Reads a triangulated surface (.vtk/.vtu) or a polyline boundary (.txt)
with attached fields, optionally converts the fields between the cell
and point domains, and interpolates them onto the target points`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("interp called")
		im := &InterpModel{}
		if im.TaskFile, err = cmd.Flags().GetString("taskFile"); err != nil {
			panic(err)
		}
		im.Plot, _ = cmd.Flags().GetBool("plot")
		im.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(im)
		RunInterp(im, ip)
	},
}

func processInput(im *InterpModel) (ip *InputParameters.InterpolationParameters) {
	var (
		err      error
		willExit bool
	)
	if len(im.TaskFile) == 0 {
		err := fmt.Errorf("must supply a task file (-F, --taskFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Crucible Side Wall"
SurfaceFile: surface.vtk
FieldType: cell # Can be "point"
Fields: [q]
ConvertFields: true
TargetsFile: targets.txt
OutputFile: results.txt
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(im.TaskFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InterpolationParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().StringP("taskFile", "F", "", "YAML file describing the interpolation task")
	InterpCmd.Flags().BoolP("plot", "g", false, "display the surface or boundary geometry")
	InterpCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func RunInterp(im *InterpModel, ip *InputParameters.InterpolationParameters) {
	if im.Profile {
		defer profile.Start().Stop()
	}
	ip.Print()

	switch ext := filepath.Ext(ip.SurfaceFile); ext {
	case ".vtk", ".vtu":
		runSurface(im, ip)
	case ".txt":
		runBoundary(im, ip)
	default:
		fmt.Printf("error: unsupported surface file extension '%s'\n", ext)
		os.Exit(1)
	}
}

func parseFieldType(name string) surface.FieldType {
	switch strings.ToLower(name) {
	case "cell", "":
		return surface.CellField
	case "point":
		return surface.PointField
	}
	fmt.Printf("error: unknown field type '%s', must be \"cell\" or \"point\"\n", name)
	os.Exit(1)
	return surface.CellField
}

func runSurface(im *InterpModel, ip *InputParameters.InterpolationParameters) {
	var (
		err error
	)
	si := surface.NewSurfaceInterpolator3D()
	if filepath.Ext(ip.SurfaceFile) == ".vtu" {
		err = si.ReadVTU(ip.SurfaceFile)
	} else {
		err = si.ReadVTK(ip.SurfaceFile)
	}
	if err != nil {
		panic(err)
	}

	fieldType := parseFieldType(ip.FieldType)
	fields := ip.Fields
	if len(fields) == 0 {
		if fieldType == surface.CellField {
			fields = sortedNames(si.CellFields)
		} else {
			fields = sortedNames(si.PointFields)
		}
	}

	if ip.ConvertFields {
		targetType := surface.PointField
		if fieldType == surface.PointField {
			targetType = surface.CellField
		}
		for _, name := range fields {
			if err = si.Convert(fieldType, name, targetType, ""); err != nil {
				panic(err)
			}
		}
	}

	if len(ip.WriteVTU) != 0 {
		if err = si.WriteVTU(ip.WriteVTU); err != nil {
			panic(err)
		}
	}

	if im.Plot {
		surface.PlotSurface(si)
	}

	if len(ip.TargetsFile) == 0 {
		return
	}

	// axisymmetric targets are given as (r,z) pairs
	header := []string{"x", "y", "z"}
	if ip.Axisymmetric {
		header = []string{"r", "z"}
	}

	targets, err := readTargets(ip.TargetsFile, len(header))
	if err != nil {
		panic(err)
	}
	markers := allMarked(len(targets))

	rows := make([][]float64, len(targets))
	for i, p := range targets {
		rows[i] = append([]float64(nil), p...)
	}

	for _, name := range fields {
		var values *mat.VecDense
		if ip.Axisymmetric {
			values, err = si.InterpolateRZ(fieldType, name, toPoint2(targets), markers)
		} else {
			values, err = si.Interpolate(fieldType, name, toPoint3(targets), markers)
		}
		if err != nil {
			panic(err)
		}
		header = append(header, name)
		for i := range rows {
			rows[i] = append(rows[i], values.AtVec(i))
		}
	}

	if len(ip.OutputFile) != 0 {
		if err = writeTable(ip.OutputFile, header, rows); err != nil {
			panic(err)
		}
	}
}

func runBoundary(im *InterpModel, ip *InputParameters.InterpolationParameters) {
	si := surface.NewSurfaceInterpolator2D()
	if err := si.ReadTXT(ip.SurfaceFile); err != nil {
		panic(err)
	}

	if im.Plot {
		surface.PlotBoundary(si)
	}

	if len(ip.TargetsFile) == 0 {
		return
	}

	fields := ip.Fields
	if len(fields) == 0 {
		fields = sortedNames(si.Fields)
	}

	// axisymmetric targets are given in 3D Cartesian coordinates and
	// mapped onto the (r,z) plane
	header := []string{"r", "z"}
	if ip.Axisymmetric {
		header = []string{"x", "y", "z"}
	}

	targets, err := readTargets(ip.TargetsFile, len(header))
	if err != nil {
		panic(err)
	}
	markers := allMarked(len(targets))

	rows := make([][]float64, len(targets))
	for i, p := range targets {
		rows[i] = append([]float64(nil), p...)
	}

	for _, name := range fields {
		var values *mat.VecDense
		if ip.Axisymmetric {
			values, err = si.InterpolateXYZ(name, toPoint3(targets), markers)
		} else {
			values, err = si.Interpolate(name, toPoint2(targets), markers)
		}
		if err != nil {
			panic(err)
		}
		header = append(header, name)
		for i := range rows {
			rows[i] = append(rows[i], values.AtVec(i))
		}
	}

	if len(ip.OutputFile) != 0 {
		if err = writeTable(ip.OutputFile, header, rows); err != nil {
			panic(err)
		}
	}
}

func sortedNames[V any](fields map[string]V) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func allMarked(n int) []bool {
	markers := make([]bool, n)
	for i := range markers {
		markers[i] = true
	}
	return markers
}

func toPoint2(rows [][]float64) []geometry.Point2 {
	points := make([]geometry.Point2, len(rows))
	for i, row := range rows {
		points[i] = geometry.Point2{row[0], row[1]}
	}
	return points
}

func toPoint3(rows [][]float64) []geometry.Point3 {
	points := make([]geometry.Point3, len(rows))
	for i, row := range rows {
		points[i] = geometry.Point3{row[0], row[1], row[2]}
	}
	return points
}

// readTargets reads the target point coordinates from a whitespace
// delimited text table. The header row is skipped; each following row
// holds at least dim coordinate columns.
func readTargets(fileName string, dim int) ([][]float64, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	fmt.Printf("Reading '%s'\n", fileName)

	var (
		targets   [][]float64
		gotHeader bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gotHeader {
			gotHeader = true
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < dim {
			return nil, fmt.Errorf("%s: row has %d columns, expected at least %d: '%s'",
				fileName, len(cols), dim, line)
		}

		row := make([]float64, dim)
		for d := 0; d < dim; d++ {
			if row[d], err = strconv.ParseFloat(cols[d], 64); err != nil {
				return nil, fmt.Errorf("%s: invalid coordinate '%s'", fileName, cols[d])
			}
		}
		targets = append(targets, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}

	return targets, nil
}

// writeTable writes the interpolation results as a whitespace delimited
// text table, one target point per row.
func writeTable(fileName string, header []string, rows [][]float64) error {
	start := time.Now()

	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	fmt.Printf("Writing '%s'", fileName)

	w := bufio.NewWriter(file)

	fmt.Fprintln(w, strings.Join(header, " "))
	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", val)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf(" (%g s)\n", time.Since(start).Seconds())
	return nil
}
