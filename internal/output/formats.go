// internal/output/formats.go
package output

import "fmt"

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV annotation output.
const TSVHeader = "source_file\trecord_id\tname\tstart\tend\tdirection\ttype\tcolor"

// CheckFormat rejects anything but text, json or jsonl.
func CheckFormat(f string) error {
	switch f {
	case FormatText, FormatJSON, FormatJSONL:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (want text|json|jsonl)", f)
}
