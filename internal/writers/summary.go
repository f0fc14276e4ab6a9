// internal/writers/summary.go
package writers

import (
	"fmt"
	"io"

	"seqviz/internal/jsonutil"
	"seqviz/internal/output"
	"seqviz/pkg/api"
)

// SummaryTSVHeader heads `seqviz fetch` text output.
const SummaryTSVHeader = "accession\tid\tlength\ttopology\talphabet\tfeatures\taccepted"

type summaryArgs struct {
	Header bool
	List   []api.RecordSummaryV1
}

func init() {
	RegisterSummary(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(summaryArgs)
		list := args.List
		if list == nil {
			list = []api.RecordSummaryV1{}
		}
		return jsonutil.EncodePretty(w, list)
	})
	RegisterSummary(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(summaryArgs)
		pipe, done := StartSummaryJSONLWriter(w, len(args.List))
		for _, s := range args.List {
			pipe <- s
		}
		close(pipe)
		return <-done
	})
	RegisterSummary(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(summaryArgs)
		if args.Header {
			if _, err := fmt.Fprintln(w, SummaryTSVHeader); err != nil {
				return err
			}
		}
		for _, s := range args.List {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\t%d\n",
				s.Accession, s.ID, s.Length, s.Topology, s.Alphabet, s.Features, s.Accepted); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSummaryList writes summaries in format.
func WriteSummaryList(w io.Writer, format string, header bool, list []api.RecordSummaryV1) error {
	err := WriteSummaries(format, w, summaryArgs{Header: header, List: list})
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
