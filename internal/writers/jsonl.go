// internal/writers/jsonl.go
package writers

import (
	"io"

	"seqviz/internal/jsonlutil"
	"seqviz/internal/output"
	"seqviz/pkg/api"
)

// StartAnnotationJSONLWriter streams each Row as one JSON line (v1).
func StartAnnotationJSONLWriter(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return jsonlutil.Start[output.Row](out, bufSize,
		func(r output.Row) any { return output.ToAPIAnnotation(r) },
		IsBrokenPipe,
	)
}

// StartSummaryJSONLWriter streams record summaries as JSON lines.
func StartSummaryJSONLWriter(out io.Writer, bufSize int) (chan<- api.RecordSummaryV1, <-chan error) {
	return jsonlutil.Start[api.RecordSummaryV1](out, bufSize,
		func(s api.RecordSummaryV1) any { return s },
		IsBrokenPipe,
	)
}
