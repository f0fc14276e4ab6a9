// Package search finds a query in a record sequence the way the viewer's
// search box does: IUPAC-aware with a mismatch budget on both strands for
// nucleotides, plain case-insensitive substring search for proteins.
package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"seqviz/internal/oligo"
)

// ErrBadQuery reports an unusable query or mismatch budget.
var ErrBadQuery = errors.New("bad search query")

// Query is what the viewer's search box holds.
type Query struct {
	Text     string
	Mismatch int
}

// Match is one hit. On circular sequences End < Start marks a hit that
// crosses the origin.
type Match struct {
	Start      int
	End        int
	Direction  int // 1 forward strand, -1 reverse strand
	Mismatches int
}

// Find returns every match of q in seq, sorted by Start then Direction.
// An empty query yields no matches.
func Find(seq string, q Query, circular bool) ([]Match, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, nil
	}
	if q.Mismatch < 0 {
		return nil, fmt.Errorf("%w: negative mismatch %d", ErrBadQuery, q.Mismatch)
	}
	if oligo.Detect(seq) == oligo.Protein {
		return findProtein(seq, q.Text, circular), nil
	}

	pat, err := oligo.Validate(q.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	if q.Mismatch >= len(pat) {
		return nil, fmt.Errorf("%w: mismatch %d must be smaller than query length %d", ErrBadQuery, q.Mismatch, len(pat))
	}

	target := []byte(oligo.Normalize(seq))
	n := len(target)
	scan := target
	if circular && n > 0 {
		scan = append(append(make([]byte, 0, n+len(pat)-1), target...), target[:min(len(pat)-1, n)]...)
	}

	var out []Match
	add := func(hits []oligo.Hit, dir int) {
		for _, h := range hits {
			if h.Pos >= n {
				continue
			}
			out = append(out, Match{Start: h.Pos, End: wrap(h.Pos+len(pat), n), Direction: dir, Mismatches: h.Mismatches})
		}
	}
	add(oligo.Scan(scan, []byte(pat), q.Mismatch, 0), 1)
	if rc := oligo.RevComp([]byte(pat)); string(rc) != pat {
		add(oligo.Scan(scan, rc, q.Mismatch, 0), -1)
	}
	sortMatches(out)
	return out, nil
}

func findProtein(seq, query string, circular bool) []Match {
	s := strings.ToUpper(seq)
	q := strings.ToUpper(strings.TrimSpace(query))
	n := len(s)
	if circular && n > 0 {
		s += s[:min(len(q)-1, n)]
	}
	var out []Match
	for i := 0; ; {
		j := strings.Index(s[i:], q)
		if j < 0 {
			break
		}
		pos := i + j
		if pos >= n {
			break
		}
		out = append(out, Match{Start: pos, End: wrap(pos+len(q), n), Direction: 1})
		i = pos + 1
	}
	return out
}

func wrap(end, n int) int {
	if n > 0 && end > n {
		return end - n
	}
	return end
}

func sortMatches(m []Match) {
	sort.SliceStable(m, func(i, j int) bool {
		if m[i].Start != m[j].Start {
			return m[i].Start < m[j].Start
		}
		return m[i].Direction > m[j].Direction
	})
}
