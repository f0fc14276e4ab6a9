// internal/writers/annotations.go
package writers

import (
	"io"

	"seqviz/internal/output"
)

type annotationArgs struct {
	Sort   bool
	Header bool
	In     <-chan output.Row
}

func drain(ch <-chan output.Row) []output.Row {
	list := make([]output.Row, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array (always buffered)
	RegisterAnnotation(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(annotationArgs)
		list := drain(args.In)
		if args.Sort {
			output.SortRows(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming; --sort buffers first
	RegisterAnnotation(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(annotationArgs)
		pipe, done := StartAnnotationJSONLWriter(w, 64)
		if args.Sort {
			list := drain(args.In)
			output.SortRows(list)
			for _, r := range list {
				pipe <- r
			}
		} else {
			for r := range args.In {
				pipe <- r
			}
		}
		close(pipe)
		return <-done
	})

	// TEXT/TSV
	RegisterAnnotation(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(annotationArgs)
		if args.Sort {
			list := drain(args.In)
			output.SortRows(list)
			return output.WriteTSV(w, list, args.Header)
		}
		return output.StreamTSV(w, args.In, args.Header)
	})
}

// StartAnnotationWriter runs the registered writer for format in a
// goroutine. Close the returned channel, then read the error channel once.
// An unknown format still drains the input before reporting.
func StartAnnotationWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteAnnotations(format, out, annotationArgs{Sort: sort, Header: header, In: in})
		if err != nil {
			for range in {
			}
			if IsBrokenPipe(err) {
				err = nil
			}
		}
		errCh <- err
	}()
	return in, errCh
}
