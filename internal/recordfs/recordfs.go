// Package recordfs loads sequence records from local files: GenBank
// flatfiles, GFF3 with FASTA, or bare FASTA. DirSource serves a directory of
// such files as a record.Source.
package recordfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seqviz/internal/fasta"
	"seqviz/internal/genbank"
	"seqviz/internal/gff"
	"seqviz/internal/record"
)

// ErrBadAccession rejects accessions that would escape the directory.
var ErrBadAccession = errors.New("invalid accession")

type Format int

const (
	GenBank Format = iota
	GFF3
	FASTA
)

func (f Format) String() string {
	switch f {
	case GFF3:
		return "gff3"
	case FASTA:
		return "fasta"
	}
	return "genbank"
}

// FormatOf guesses the format from the file name; unknown extensions are
// read as GenBank.
func FormatOf(path string) Format {
	p := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	switch filepath.Ext(p) {
	case ".gff", ".gff3":
		return GFF3
	case ".fa", ".fasta", ".fna", ".fas":
		return FASTA
	}
	return GenBank
}

// ReadFile loads every record in path. fastaPath, when set, supplies
// sequences for a GFF3 file and is ignored otherwise.
func ReadFile(path, fastaPath string) ([]*record.Record, error) {
	switch FormatOf(path) {
	case GFF3:
		return gff.Load(path, fastaPath)
	case FASTA:
		seqs, err := fasta.ReadFile(path)
		if err != nil {
			return nil, err
		}
		out := make([]*record.Record, 0, len(seqs))
		for _, s := range seqs {
			out = append(out, &record.Record{
				ID:   s.ID,
				Name: s.ID,
				Seq:  strings.ToUpper(string(s.Seq)),
			})
		}
		return out, nil
	}
	return genbank.ReadFile(path)
}

var (
	genbankExts = []string{".gb", ".gbk", ".genbank", ".gbff"}
	fastaExts   = []string{".fa", ".fasta", ".fna"}
)

// DirSource serves records from files named after their accession:
// <acc>.gb|.gbk|.genbank|.gbff (optionally .gz), or <acc>.gff3 with a
// sibling <acc>.fa|.fasta|.fna.
type DirSource struct {
	Dir string
}

func (d DirSource) Fetch(ctx context.Context, key record.Key) (*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acc := strings.TrimSpace(key.Accession)
	if acc == "" || acc == "." || acc == ".." || strings.ContainsAny(acc, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrBadAccession, key.Accession)
	}

	if p := d.find(acc, genbankExts); p != "" {
		recs, err := genbank.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return pick(recs, acc, p)
	}
	if p := d.find(acc, []string{".gff3", ".gff"}); p != "" {
		recs, err := gff.Load(p, d.find(acc, fastaExts))
		if err != nil {
			return nil, err
		}
		return pick(recs, acc, p)
	}
	return nil, fmt.Errorf("%s in %s: %w", acc, d.Dir, record.ErrNotFound)
}

func (d DirSource) find(acc string, exts []string) string {
	for _, ext := range exts {
		for _, suffix := range []string{"", ".gz"} {
			p := filepath.Join(d.Dir, acc+ext+suffix)
			if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
				return p
			}
		}
	}
	return ""
}

// pick prefers the record whose id or name matches acc (with or without a
// version suffix) and falls back to the first record in the file.
func pick(recs []*record.Record, acc, path string) (*record.Record, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: no records: %w", path, record.ErrNotFound)
	}
	for _, r := range recs {
		if r.ID == acc || r.Name == acc || strings.HasPrefix(r.ID, acc+".") {
			return r, nil
		}
	}
	return recs[0], nil
}
