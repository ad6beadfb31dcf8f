package surface

import (
	"fmt"
	"sort"
	"time"
)

// FieldType selects whether a field is attached to the surface cells
// (triangles) or to the mesh points.
type FieldType int

const (
	CellField FieldType = iota
	PointField
)

func (ft FieldType) String() string {
	return [...]string{"CellField", "PointField"}[ft]
}

// formatTime prints an elapsed wall-clock time in seconds, enclosed in
// parenthesis.
func formatTime(start time.Time) string {
	return fmt.Sprintf("(%g s)", time.Since(start).Seconds())
}

// fieldNames returns the map keys in sorted order so that printed
// summaries and written files are deterministic.
func fieldNames[V any](fields map[string]V) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
