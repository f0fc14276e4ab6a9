// internal/feature/feature.go
package feature

import (
	"fmt"
	"strings"
)

// Strand is the orientation of a feature relative to the record sequence.
type Strand int8

const (
	Unknown Strand = 0
	Forward Strand = 1
	Reverse Strand = -1
)

// Valid reports whether s is one of Forward, Reverse or Unknown.
func (s Strand) Valid() bool {
	return s == Forward || s == Reverse || s == Unknown
}

// Direction maps the strand to the viewer's direction value (1, -1, 0).
func (s Strand) Direction() int {
	return int(s)
}

func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	case Unknown:
		return "."
	}
	return fmt.Sprintf("Strand(%d)", int8(s))
}

// ParseStrand accepts the spellings used by GenBank/GFF tooling.
func ParseStrand(s string) (Strand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "1", "+1", "forward", "plus":
		return Forward, nil
	case "-", "-1", "reverse", "minus":
		return Reverse, nil
	case ".", "?", "0", "", "unknown", "none":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unrecognized strand %q", s)
}

// Qualifiers maps a qualifier key to its values in file order.
type Qualifiers map[string][]string

// Get returns the values stored under key and whether the key is present.
func (q Qualifiers) Get(key string) ([]string, bool) {
	v, ok := q[key]
	return v, ok
}

// First returns the first value under key. Missing keys, keys without
// values, and an empty first value all report ok=false.
func (q Qualifiers) First(key string) (string, bool) {
	v, ok := q[key]
	if !ok || len(v) == 0 || v[0] == "" {
		return "", false
	}
	return v[0], true
}

// Add appends value under key.
func (q Qualifiers) Add(key, value string) {
	q[key] = append(q[key], value)
}

// SequenceFeature is one annotated sub-region of a sequence record as
// supplied by a parser. Start/End are zero-based, half-open.
type SequenceFeature struct {
	Kind       string     `msgpack:"kind"`
	Start      int        `msgpack:"start"`
	End        int        `msgpack:"end"`
	Strand     Strand     `msgpack:"strand"`
	Qualifiers Qualifiers `msgpack:"qualifiers"`
}

// Len is End-Start.
func (f SequenceFeature) Len() int { return f.End - f.Start }
