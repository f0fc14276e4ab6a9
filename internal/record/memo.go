// internal/record/memo.go
package record

import (
	"context"
	"sync"

	"seqviz/internal/runutil"
)

// Memo keeps the most recently fetched records in memory. Returned records
// are shared between callers and must be treated as read-only.
type Memo struct {
	Next Source

	mu  sync.Mutex
	lru *runutil.LRU[Key, *Record]
}

// NewMemo wraps next with an LRU of the given size (<=0 picks a default).
func NewMemo(next Source, size int) *Memo {
	return &Memo{Next: next, lru: runutil.NewLRU[Key, *Record](size)}
}

func (m *Memo) Fetch(ctx context.Context, key Key) (*Record, error) {
	m.mu.Lock()
	rec, ok := m.lru.Get(key)
	m.mu.Unlock()
	if ok {
		return rec, nil
	}
	rec, err := m.Next.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.lru.Put(key, rec)
	m.mu.Unlock()
	return rec, nil
}
