// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// Writer registries (format → handler), filled from init() blocks.
var (
	AnnotationWriters = map[string]func(w io.Writer, data interface{}) error{}
	SummaryWriters    = map[string]func(w io.Writer, data interface{}) error{}
)

// Register helpers (last wins).
func RegisterAnnotation(format string, fn func(io.Writer, interface{}) error) {
	AnnotationWriters[format] = fn
}
func RegisterSummary(format string, fn func(io.Writer, interface{}) error) {
	SummaryWriters[format] = fn
}

func WriteAnnotations(format string, w io.Writer, payload interface{}) error {
	fn, ok := AnnotationWriters[format]
	if !ok {
		return fmt.Errorf("unknown annotation format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

func WriteSummaries(format string, w io.Writer, payload interface{}) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
