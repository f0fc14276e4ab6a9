// Package overlap answers window and containment queries over a fixed set
// of annotations using an interval tree.
package overlap

import (
	"sort"

	"github.com/biogo/store/interval"

	"seqviz/internal/annotate"
)

// Index is immutable after New and safe for concurrent queries.
type Index struct {
	annots []annotate.Annotation
	spans  []interval.IntRange
	tree   interval.IntTree
}

type entry struct {
	id int
	r  interval.IntRange
}

func (e entry) Overlap(b interval.IntRange) bool { return halfOpen(e.r, b) }
func (e entry) ID() uintptr                      { return uintptr(e.id) }
func (e entry) Range() interval.IntRange         { return e.r }

// window matches any stored range sharing at least one position.
type window interval.IntRange

func (w window) Overlap(b interval.IntRange) bool { return halfOpen(interval.IntRange(w), b) }

// enclosed matches stored ranges that fully contain it.
type enclosed interval.IntRange

func (c enclosed) Overlap(b interval.IntRange) bool {
	return b.Start <= c.Start && c.End <= b.End
}

func halfOpen(a, b interval.IntRange) bool { return a.Start < b.End && b.Start < a.End }

// span widens zero-length sites (e.g. 30^31 insertions) to one position so
// they can be stored and found.
func span(a annotate.Annotation) interval.IntRange {
	r := interval.IntRange{Start: a.Start, End: a.End}
	if r.End <= r.Start {
		r.End = r.Start + 1
	}
	return r
}

// New indexes annots. The slice is not copied; callers must not modify it.
func New(annots []annotate.Annotation) *Index {
	ix := &Index{annots: annots, spans: make([]interval.IntRange, len(annots))}
	for i, a := range annots {
		ix.spans[i] = span(a)
		// Insert only fails for inverted ranges, which span rules out.
		_ = ix.tree.Insert(entry{id: i, r: ix.spans[i]}, true)
	}
	ix.tree.AdjustRanges()
	return ix
}

func (ix *Index) Len() int { return len(ix.annots) }

func (ix *Index) collect(q interval.IntOverlapper) []int {
	var ids []int
	for _, e := range ix.tree.Get(q) {
		ids = append(ids, e.(entry).id)
	}
	sort.Ints(ids)
	return ids
}

func (ix *Index) pick(ids []int) []annotate.Annotation {
	out := make([]annotate.Annotation, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.annots[id])
	}
	return out
}

// Overlapping returns the annotations intersecting [start, end), in input
// order. An empty or inverted window matches nothing.
func (ix *Index) Overlapping(start, end int) []annotate.Annotation {
	if end <= start || len(ix.annots) == 0 {
		return []annotate.Annotation{}
	}
	return ix.pick(ix.collect(window{Start: start, End: end}))
}

// At returns the annotations covering pos.
func (ix *Index) At(pos int) []annotate.Annotation {
	return ix.Overlapping(pos, pos+1)
}

// contained lists, in input order, the annotations lying entirely inside
// another one. Of several identical spans the first is not counted.
func (ix *Index) contained() []int {
	var ids []int
	for i, r := range ix.spans {
		for _, j := range ix.collect(enclosed(r)) {
			if j != i && (ix.spans[j] != r || j < i) {
				ids = append(ids, i)
				break
			}
		}
	}
	return ids
}

// Contained returns the annotations enclosed by another annotation.
func (ix *Index) Contained() []annotate.Annotation {
	return ix.pick(ix.contained())
}

// Culled returns the annotations with every contained one removed.
func (ix *Index) Culled() []annotate.Annotation {
	drop := ix.contained()
	out := make([]annotate.Annotation, 0, len(ix.annots)-len(drop))
	for i, a := range ix.annots {
		if len(drop) > 0 && drop[0] == i {
			drop = drop[1:]
			continue
		}
		out = append(out, a)
	}
	return out
}
