package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML task file
type InterpolationParameters struct {
	Title         string   `yaml:"Title"`
	SurfaceFile   string   `yaml:"SurfaceFile"`   // .vtk/.vtu surface or .txt polyline
	FieldType     string   `yaml:"FieldType"`     // "cell" or "point", surface data only
	Fields        []string `yaml:"Fields"`        // Fields to interpolate; empty means all
	ConvertFields bool     `yaml:"ConvertFields"` // Convert fields to the other domain first
	TargetsFile   string   `yaml:"TargetsFile"`
	OutputFile    string   `yaml:"OutputFile"`
	WriteVTU      string   `yaml:"WriteVTU"` // If set, dump the surface after conversion
	Axisymmetric  bool     `yaml:"Axisymmetric"`
}

func (ip *InterpolationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InterpolationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t= SurfaceFile\n", ip.SurfaceFile)
	fmt.Printf("[%s]\t\t\t= FieldType\n", ip.FieldType)
	fmt.Printf("[%s]\t= TargetsFile\n", ip.TargetsFile)
	fmt.Printf("[%s]\t= OutputFile\n", ip.OutputFile)
	fmt.Printf("[%t]\t\t\t= ConvertFields\n", ip.ConvertFields)
	fmt.Printf("[%t]\t\t\t= Axisymmetric\n", ip.Axisymmetric)
	fields := append([]string(nil), ip.Fields...)
	sort.Strings(fields)
	fmt.Printf("Fields = [%s]\n", strings.Join(fields, ", "))
}
