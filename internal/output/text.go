// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteTSV writes rows as a tab-delimited table.
func WriteTSV(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes rows as they arrive. On a write error the channel is
// drained so the producer never blocks.
func StreamTSV(w io.Writer, in <-chan Row, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowTSV(r))
	}
	return err
}
