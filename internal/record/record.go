// Package record defines a sequence record, the Source contract that
// supplies it, and two Source decorators: an in-memory memo and a
// persistent bolt cache keyed by (accession, contact).
package record

import (
	"context"
	"errors"

	"seqviz/internal/feature"
)

// ErrNotFound is returned when a source has no record for the key.
var ErrNotFound = errors.New("record not found")

// Record is a parsed sequence with its feature table.
type Record struct {
	ID       string                    `msgpack:"id"`
	Name     string                    `msgpack:"name"`
	Seq      string                    `msgpack:"seq"`
	Circular bool                      `msgpack:"circular"`
	Molecule string                    `msgpack:"molecule"`
	Features []feature.SequenceFeature `msgpack:"features"`
}

// Len is the sequence length.
func (r *Record) Len() int { return len(r.Seq) }

// Key identifies a fetch: the accession plus the contact identity the
// remote database asks callers to supply. Both take part in caching.
type Key struct {
	Accession string
	Contact   string
}

// Source supplies records by key.
type Source interface {
	Fetch(ctx context.Context, key Key) (*Record, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, key Key) (*Record, error)

func (f SourceFunc) Fetch(ctx context.Context, key Key) (*Record, error) { return f(ctx, key) }
