// Package viewer assembles the props document the sequence viewer widget
// renders, and resolves the outputs the widget would compute from it
// (search hits and enzyme cut sites).
package viewer

import (
	"errors"
	"fmt"
	"strings"

	"seqviz/internal/annotate"
	"seqviz/internal/enzyme"
	"seqviz/internal/oligo"
	"seqviz/internal/record"
	"seqviz/internal/search"
	"seqviz/pkg/api"
)

// ErrInvalidProps wraps every validation failure from Build.
var ErrInvalidProps = errors.New("invalid viewer props")

type Topology string

const (
	Linear   Topology = "linear"
	Circular Topology = "circular"
	Both     Topology = "both"
	BothFlip Topology = "both_flip"
)

// ParseTopology accepts the widget's viewer names, case-insensitively.
func ParseTopology(s string) (Topology, error) {
	switch t := Topology(strings.ToLower(strings.TrimSpace(s))); t {
	case Linear, Circular, Both, BothFlip:
		return t, nil
	}
	return "", fmt.Errorf("%w: viewer %q (want linear|circular|both|both_flip)", ErrInvalidProps, s)
}

// HasCircular reports whether the layout includes a circular track.
func (t Topology) HasCircular() bool { return t != Linear }

// Settings are the display choices that are not taken from the record.
type Settings struct {
	Topology       Topology
	Zoom           int
	Search         search.Query
	ShowComplement bool
	ShowIndex      bool
	Enzymes        []string
}

// DefaultSettings match the widget demo.
func DefaultSettings() Settings {
	return Settings{
		Topology:       Both,
		Zoom:           50,
		ShowComplement: true,
		ShowIndex:      true,
		Enzymes:        append([]string(nil), enzyme.DefaultNames...),
	}
}

// Annotations converts to the wire schema.
func Annotations(as []annotate.Annotation) []api.AnnotationV1 {
	out := make([]api.AnnotationV1, 0, len(as))
	for _, a := range as {
		out = append(out, api.AnnotationV1{
			Name: a.Name, Start: a.Start, End: a.End,
			Direction: a.Direction, Type: a.Type, Color: a.Color,
		})
	}
	return out
}

// AlphabetOf uses the record's molecule type when it says protein and
// otherwise inspects the residues.
func AlphabetOf(rec *record.Record) oligo.Alphabet {
	switch strings.ToLower(rec.Molecule) {
	case "aa", "protein":
		return oligo.Protein
	}
	return oligo.Detect(rec.Seq)
}

// Build validates s and annots against rec and returns the props document.
// Options that make no sense for the record's alphabet are dropped and
// reported as warnings rather than errors.
func Build(rec *record.Record, annots []annotate.Annotation, s Settings) (api.ViewerPropsV1, []string, error) {
	var warns []string
	topo, err := ParseTopology(string(s.Topology))
	if err != nil {
		return api.ViewerPropsV1{}, nil, err
	}
	if s.Zoom < 0 || s.Zoom > 100 {
		return api.ViewerPropsV1{}, nil, fmt.Errorf("%w: zoom %d outside 0..100", ErrInvalidProps, s.Zoom)
	}
	if s.Search.Mismatch < 0 {
		return api.ViewerPropsV1{}, nil, fmt.Errorf("%w: negative search mismatch %d", ErrInvalidProps, s.Search.Mismatch)
	}
	enz, err := enzyme.Lookup(s.Enzymes)
	if err != nil {
		return api.ViewerPropsV1{}, nil, fmt.Errorf("%w: %w", ErrInvalidProps, err)
	}
	n := rec.Len()
	for i, a := range annots {
		if !annotate.ValidColor(a.Color) {
			return api.ViewerPropsV1{}, nil, fmt.Errorf("%w: annotation #%d %q: color %q", ErrInvalidProps, i, a.Name, a.Color)
		}
		if a.Start < 0 || a.End < a.Start || a.End > n {
			return api.ViewerPropsV1{}, nil, fmt.Errorf("%w: annotation #%d %q: span %d..%d outside sequence of length %d",
				ErrInvalidProps, i, a.Name, a.Start, a.End, n)
		}
	}

	alpha := AlphabetOf(rec)
	names := make([]string, 0, len(enz))
	for _, e := range enz {
		names = append(names, e.Name)
	}
	showComp := s.ShowComplement
	if !alpha.Nucleic() {
		if len(names) > 0 {
			warns = append(warns, fmt.Sprintf("%s: protein sequence; ignoring enzymes %s", recName(rec), strings.Join(names, ",")))
			names = names[:0]
		}
		if showComp {
			warns = append(warns, fmt.Sprintf("%s: protein sequence; complement strand hidden", recName(rec)))
			showComp = false
		}
	}

	return api.ViewerPropsV1{
		Name:           recName(rec),
		Seq:            rec.Seq,
		Annotations:    Annotations(annots),
		Viewer:         string(topo),
		Zoom:           api.ZoomV1{Linear: s.Zoom},
		Search:         api.SearchV1{Query: s.Search.Text, Mismatch: s.Search.Mismatch},
		ShowComplement: showComp,
		ShowIndex:      s.ShowIndex,
		Enzymes:        names,
		Alphabet:       string(alpha),
		Circular:       rec.Circular,
	}, warns, nil
}

func recName(rec *record.Record) string {
	if rec.Name != "" {
		return rec.Name
	}
	return rec.ID
}

// Resolve computes search hits and cut sites for props. Both wrap the
// origin only for a circular molecule shown on a circular track.
func Resolve(props api.ViewerPropsV1) (api.ViewerStateV1, error) {
	topo, err := ParseTopology(props.Viewer)
	if err != nil {
		return api.ViewerStateV1{}, err
	}
	circular := props.Circular && topo.HasCircular()
	st := api.ViewerStateV1{
		Props:    props,
		Search:   []api.SearchMatchV1{},
		CutSites: []api.CutSiteV1{},
	}

	matches, err := search.Find(props.Seq, search.Query{Text: props.Search.Query, Mismatch: props.Search.Mismatch}, circular)
	if err != nil {
		return api.ViewerStateV1{}, err
	}
	for _, m := range matches {
		st.Search = append(st.Search, api.SearchMatchV1{
			Start: m.Start, End: m.End, Direction: m.Direction, Mismatches: m.Mismatches,
		})
	}

	if len(props.Enzymes) == 0 {
		return st, nil
	}
	enz, err := enzyme.Lookup(props.Enzymes)
	if err != nil {
		return api.ViewerStateV1{}, fmt.Errorf("%w: %w", ErrInvalidProps, err)
	}
	for _, c := range enzyme.CutSites(props.Seq, enz, circular) {
		st.CutSites = append(st.CutSites, api.CutSiteV1{
			Enzyme: c.Enzyme, Start: c.Start, End: c.End,
			Direction: c.Direction, FCut: c.Cut, RCut: c.RCut,
		})
	}
	return st, nil
}
