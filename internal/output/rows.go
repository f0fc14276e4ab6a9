// internal/output/rows.go
package output

import (
	"fmt"
	"sort"

	"seqviz/internal/annotate"
	"seqviz/pkg/api"
)

// Row is an annotation tagged with where it came from.
type Row struct {
	SourceFile string
	RecordID   string
	annotate.Annotation
}

// ToAPIAnnotation converts a Row to the stable wire schema (v1).
func ToAPIAnnotation(r Row) api.AnnotationV1 {
	return api.AnnotationV1{
		Name:       r.Name,
		Start:      r.Start,
		End:        r.End,
		Direction:  r.Direction,
		Type:       r.Type,
		Color:      r.Color,
		RecordID:   r.RecordID,
		SourceFile: r.SourceFile,
	}
}

// SortRows orders by source, record, start, end, then name.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		if a.RecordID != b.RecordID {
			return a.RecordID < b.RecordID
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Name < b.Name
	})
}

// FormatRowTSV returns the TSV columns for r (no trailing newline).
func FormatRowTSV(r Row) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s",
		r.SourceFile, r.RecordID, r.Name,
		r.Start, r.End, r.Direction, r.Type, r.Color)
}
