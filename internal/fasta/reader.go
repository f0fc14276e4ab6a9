// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA entry. Seq keeps the residues as written, minus
// whitespace.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Read parses every record from r.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	var (
		out  []Record
		cur  *Record
		line int
	)
	for {
		b, err := br.ReadBytes('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		line++
		b = bytes.TrimRight(b, "\r\n")
		switch {
		case len(b) == 0:
		case b[0] == '>':
			hdr := strings.TrimSpace(string(b[1:]))
			if hdr == "" {
				return nil, fmt.Errorf("fasta: line %d: empty header", line)
			}
			id, desc, _ := strings.Cut(hdr, " ")
			out = append(out, Record{ID: id, Description: strings.TrimSpace(desc)})
			cur = &out[len(out)-1]
		case b[0] == ';':
			// legacy comment line
		default:
			if cur == nil {
				return nil, fmt.Errorf("fasta: line %d: sequence before first header", line)
			}
			for _, c := range b {
				if c != ' ' && c != '\t' {
					cur.Seq = append(cur.Seq, c)
				}
			}
		}
		if eof {
			break
		}
	}
	return out, nil
}

// ReadFile opens path (gzip and "-" aware) and parses it.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
