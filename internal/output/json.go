// internal/output/json.go
package output

import (
	"io"

	"seqviz/internal/jsonutil"
	"seqviz/pkg/api"
)

func toAPIAnnotations(rows []Row) []api.AnnotationV1 {
	out := make([]api.AnnotationV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIAnnotation(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 annotations (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, toAPIAnnotations(rows))
}
