// Package genbank reads GenBank flatfiles into records with their feature
// tables. Only the sections the annotation pipeline consumes are parsed:
// LOCUS, ACCESSION, VERSION, FEATURES and ORIGIN.
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seqviz/internal/fasta"
	"seqviz/internal/feature"
	"seqviz/internal/record"
)

const (
	qualIndent = "                     " // 21 spaces
	keyIndent  = "     "                 // 5 spaces
)

// ParseError points at the offending flatfile line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string { return fmt.Sprintf("genbank: line %d: %s", e.Line, e.Msg) }

// qualifiers whose wrapped lines are joined without a space
var unspaced = map[string]bool{
	"translation":   true,
	"transcription": true,
	"peptide":       true,
	"anticodon":     true,
}

type parser struct {
	sc   *bufio.Scanner
	line int
	text string
	ok   bool
}

func (p *parser) next() {
	p.ok = p.sc.Scan()
	if p.ok {
		p.line++
		p.text = strings.TrimRight(p.sc.Text(), "\r")
	}
}

func (p *parser) errorf(format string, a ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, a...)}
}

// Read parses every record in r.
func Read(r io.Reader) ([]*record.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	p := &parser{sc: sc}

	var (
		out       []*record.Record
		cur       *record.Record
		accession string
		version   string
		protein   bool
		seq       strings.Builder
	)
	finish := func() {
		if cur == nil {
			return
		}
		switch {
		case version != "":
			cur.ID = version
		case accession != "":
			cur.ID = accession
		default:
			cur.ID = cur.Name
		}
		cur.Seq = strings.ToUpper(seq.String())
		if protein {
			for i := range cur.Features {
				cur.Features[i].Strand = feature.Unknown
			}
		}
		out = append(out, cur)
		cur, accession, version, protein = nil, "", "", false
		seq.Reset()
	}

	p.next()
	for p.ok {
		t := p.text
		switch {
		case strings.HasPrefix(t, "LOCUS"):
			finish()
			cur, protein = parseLocus(t)
			p.next()
		case cur == nil:
			if strings.TrimSpace(t) != "" {
				return nil, p.errorf("expected LOCUS, got %q", truncate(t))
			}
			p.next()
		case strings.HasPrefix(t, "ACCESSION"):
			if f := strings.Fields(t); len(f) > 1 {
				accession = f[1]
			}
			p.next()
		case strings.HasPrefix(t, "VERSION"):
			if f := strings.Fields(t); len(f) > 1 {
				version = f[1]
			}
			p.next()
		case strings.HasPrefix(t, "FEATURES"):
			p.next()
			if err := p.features(cur); err != nil {
				return nil, err
			}
		case strings.HasPrefix(t, "ORIGIN"):
			p.next()
			for p.ok && !strings.HasPrefix(p.text, "//") {
				for _, c := range p.text {
					if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '*' || c == '-' {
						seq.WriteRune(c)
					}
				}
				p.next()
			}
		case strings.HasPrefix(t, "//"):
			finish()
			p.next()
		default:
			p.next()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, p.errorf("record %q not terminated by //", cur.Name)
	}
	return out, nil
}

// ReadFile opens path (gzip and "-" aware) and parses it.
func ReadFile(path string) ([]*record.Record, error) {
	rc, err := fasta.Open(path)
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

// parseLocus reads name, molecule type and topology from the LOCUS line.
func parseLocus(line string) (*record.Record, bool) {
	f := strings.Fields(line)
	rec := &record.Record{}
	if len(f) > 1 {
		rec.Name = f[1]
	}
	protein := false
	for i, tok := range f {
		switch strings.ToLower(tok) {
		case "circular":
			rec.Circular = true
		case "aa":
			protein = true
			rec.Molecule = "protein"
		case "bp":
			if i+1 < len(f) && !isTopology(f[i+1]) {
				rec.Molecule = f[i+1]
			}
		}
	}
	return rec, protein
}

func isTopology(s string) bool {
	s = strings.ToLower(s)
	return s == "linear" || s == "circular"
}

// features consumes the feature table up to the first unindented line.
func (p *parser) features(rec *record.Record) error {
	for p.ok && strings.HasPrefix(p.text, keyIndent) {
		t := p.text
		if len(t) <= len(qualIndent) || t[5] == ' ' {
			return p.errorf("malformed feature line %q", truncate(t))
		}
		startLine := p.line
		kind := strings.TrimSpace(t[5:21])
		loc := strings.TrimSpace(t[21:])

		// location continuation lines
		p.next()
		for p.ok && strings.HasPrefix(p.text, qualIndent) {
			rest := strings.TrimSpace(p.text[len(qualIndent):])
			if strings.HasPrefix(rest, "/") {
				break
			}
			loc += rest
			p.next()
		}

		start, end, strand, err := parseLocation(loc)
		if err != nil {
			return &ParseError{Line: startLine, Msg: err.Error()}
		}
		f := feature.SequenceFeature{
			Kind: kind, Start: start, End: end, Strand: strand,
			Qualifiers: feature.Qualifiers{},
		}

		// qualifiers
		for p.ok && strings.HasPrefix(p.text, qualIndent) {
			rest := strings.TrimSpace(p.text[len(qualIndent):])
			if !strings.HasPrefix(rest, "/") {
				return p.errorf("expected qualifier, got %q", truncate(rest))
			}
			key, val, hasVal := strings.Cut(rest[1:], "=")
			p.next()
			if hasVal && strings.HasPrefix(val, `"`) {
				for !closedQuote(val) && p.ok && strings.HasPrefix(p.text, qualIndent) {
					more := strings.TrimSpace(p.text[len(qualIndent):])
					if unspaced[key] {
						val += more
					} else {
						val += " " + more
					}
					p.next()
				}
				if !closedQuote(val) {
					return p.errorf("unterminated value for /%s", key)
				}
				val = strings.ReplaceAll(val[1:len(val)-1], `""`, `"`)
			}
			f.Qualifiers.Add(key, val)
		}
		rec.Features = append(rec.Features, f)
	}
	return nil
}

// closedQuote reports whether v (starting with a quote) has its closing
// quote; doubled quotes inside are escapes.
func closedQuote(v string) bool {
	if len(v) < 2 {
		return false
	}
	n := 0
	for i := 0; i < len(v); i++ {
		if v[i] == '"' {
			n++
		}
	}
	return n%2 == 0
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}
