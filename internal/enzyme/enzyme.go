// Package enzyme holds the restriction-enzyme registry the viewer accepts by
// name and finds their recognition sites on a record.
package enzyme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"seqviz/internal/oligo"
)

// ErrUnknownEnzyme reports names missing from the registry.
var ErrUnknownEnzyme = errors.New("unknown enzyme")

// Enzyme is a recognition pattern (IUPAC, 5'→3') with cut offsets relative
// to the first base of the site: FCut on the top strand, RCut on the bottom.
type Enzyme struct {
	Name string
	Site string
	FCut int
	RCut int
}

// CutSite is one recognition site on a sequence. Cut and RCut are the
// top and bottom strand cut positions; on circular sequences they are
// folded back into [0, len). End < Start marks a site across the origin.
type CutSite struct {
	Enzyme    string
	Start     int
	End       int
	Direction int
	Cut       int
	RCut      int
}

// Lookup resolves names case-insensitively, keeping the requested order and
// dropping duplicates. Every unknown name is reported in one error.
func Lookup(names []string) ([]Enzyme, error) {
	var (
		out     []Enzyme
		missing []string
		seen    = make(map[string]bool, len(names))
	)
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		e, ok := byName[key]
		if !ok {
			missing = append(missing, n)
			continue
		}
		out = append(out, e)
	}
	if len(missing) > 0 {
		return out, fmt.Errorf("%w: %s", ErrUnknownEnzyme, strings.Join(missing, ", "))
	}
	return out, nil
}

// All returns the registry sorted by name.
func All() []Enzyme {
	out := make([]Enzyme, 0, len(registry))
	out = append(out, registry...)
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}

// CutSites scans seq for every enzyme on both strands. Results are sorted
// by Start, then enzyme name.
func CutSites(seq string, enzymes []Enzyme, circular bool) []CutSite {
	target := []byte(oligo.Normalize(seq))
	n := len(target)
	var out []CutSite
	for _, e := range enzymes {
		site := []byte(e.Site)
		l := len(site)
		scan := target
		if circular && n > 0 {
			scan = append(append(make([]byte, 0, n+l-1), target...), target[:min(l-1, n)]...)
		}
		for _, h := range oligo.Scan(scan, site, 0, 0) {
			if h.Pos >= n {
				continue
			}
			out = append(out, e.place(h.Pos, 1, n, circular))
		}
		rc := oligo.RevComp(site)
		if string(rc) == e.Site {
			continue
		}
		for _, h := range oligo.Scan(scan, rc, 0, 0) {
			if h.Pos >= n {
				continue
			}
			out = append(out, e.place(h.Pos, -1, n, circular))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Enzyme < out[j].Enzyme
	})
	return out
}

func (e Enzyme) place(pos, dir, n int, circular bool) CutSite {
	l := len(e.Site)
	cs := CutSite{Enzyme: e.Name, Start: pos, End: pos + l, Direction: dir}
	if dir == 1 {
		cs.Cut, cs.RCut = pos+e.FCut, pos+e.RCut
	} else {
		cs.Cut, cs.RCut = pos+l-e.RCut, pos+l-e.FCut
	}
	if circular && n > 0 {
		if cs.End > n {
			cs.End -= n
		}
		cs.Cut = fold(cs.Cut, n)
		cs.RCut = fold(cs.RCut, n)
	}
	return cs
}

func fold(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}
