// Package gff reads GFF3 feature tables, pairing them with FASTA sequences
// from a ##FASTA section or a sibling file.
package gff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"seqviz/internal/fasta"
	"seqviz/internal/feature"
	"seqviz/internal/record"
)

// split separates feature lines from an embedded ##FASTA section.
// Directive and comment lines are dropped before the feature parser sees them.
func split(r io.Reader) (body, fa []byte, err error) {
	var b bytes.Buffer
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if bytes.HasPrefix(line, []byte("##FASTA")) {
			var f bytes.Buffer
			for sc.Scan() {
				f.Write(sc.Bytes())
				f.WriteByte('\n')
			}
			return b.Bytes(), f.Bytes(), sc.Err()
		}
		if len(bytes.TrimSpace(line)) == 0 || line[0] == '#' {
			continue
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.Bytes(), nil, sc.Err()
}

// Read parses a GFF3 stream into one record per seqid, in order of first
// appearance. Sequences come from an embedded ##FASTA section when present.
func Read(r io.Reader) ([]*record.Record, error) {
	body, fa, err := split(r)
	if err != nil {
		return nil, err
	}

	var (
		out  []*record.Record
		byID = map[string]*record.Record{}
	)
	sc := featio.NewScanner(gff.NewReader(bytes.NewReader(body)))
	for sc.Next() {
		gf, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		rec := byID[gf.SeqName]
		if rec == nil {
			rec = &record.Record{ID: gf.SeqName, Name: gf.SeqName}
			byID[gf.SeqName] = rec
			out = append(out, rec)
		}
		f, circular := convert(gf)
		if circular {
			rec.Circular = true
		}
		rec.Features = append(rec.Features, f)
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("gff: %w", err)
	}

	if len(fa) > 0 {
		seqs, err := fasta.Read(bytes.NewReader(fa))
		if err != nil {
			return nil, err
		}
		out = attach(out, byID, seqs)
	}
	return out, nil
}

// Load reads gffPath and, when fastaPath is non-empty, attaches its
// sequences by id. Sequences without features become feature-less records.
func Load(gffPath, fastaPath string) ([]*record.Record, error) {
	rc, err := fasta.Open(gffPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gffPath, err)
	}
	if fastaPath == "" {
		return recs, nil
	}
	seqs, err := fasta.ReadFile(fastaPath)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*record.Record, len(recs))
	for _, r := range recs {
		byID[r.ID] = r
	}
	return attach(recs, byID, seqs), nil
}

func attach(recs []*record.Record, byID map[string]*record.Record, seqs []fasta.Record) []*record.Record {
	for _, s := range seqs {
		rec := byID[s.ID]
		if rec == nil {
			rec = &record.Record{ID: s.ID, Name: s.ID}
			byID[s.ID] = rec
			recs = append(recs, rec)
		}
		rec.Seq = strings.ToUpper(string(s.Seq))
	}
	return recs
}

// convert maps a parsed GFF line onto a SequenceFeature. Multi-valued
// attributes (comma separated) become multiple qualifier values.
func convert(gf *gff.Feature) (feature.SequenceFeature, bool) {
	f := feature.SequenceFeature{
		Kind:       gf.Feature,
		Start:      gf.FeatStart,
		End:        gf.FeatEnd,
		Qualifiers: feature.Qualifiers{},
	}
	switch gf.FeatStrand {
	case seq.Plus:
		f.Strand = feature.Forward
	case seq.Minus:
		f.Strand = feature.Reverse
	default:
		f.Strand = feature.Unknown
	}

	circular := false
	for _, a := range gf.FeatAttributes {
		tag, val := a.Tag, a.Value
		// GFF3 writes tag=value; depending on spacing the parser may leave
		// the whole pair in Tag.
		if k, v, ok := strings.Cut(strings.TrimSpace(tag+" "+val), "="); ok {
			tag, val = k, v
		}
		tag = strings.TrimSpace(tag)
		val = strings.Trim(strings.TrimSpace(val), `"`)
		if tag == "" {
			continue
		}
		for _, v := range strings.Split(val, ",") {
			if u, err := url.PathUnescape(v); err == nil {
				v = u
			}
			f.Qualifiers.Add(tag, v)
		}
		if tag == "Is_circular" && strings.EqualFold(val, "true") {
			circular = true
		}
	}
	return f, circular
}
