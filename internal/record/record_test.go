package record

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqviz/internal/feature"
)

type countingSource struct {
	calls atomic.Int64
	fail  error
}

func (s *countingSource) Fetch(_ context.Context, k Key) (*Record, error) {
	s.calls.Add(1)
	if s.fail != nil {
		return nil, s.fail
	}
	return &Record{
		ID:       k.Accession + ".1",
		Name:     k.Accession,
		Seq:      "ATGAAACCC",
		Circular: true,
		Molecule: "DNA",
		Features: []feature.SequenceFeature{{
			Kind: "CDS", Start: 0, End: 9, Strand: feature.Reverse,
			Qualifiers: feature.Qualifiers{"gene": {"geneX"}},
		}},
	}, nil
}

func TestBoltCacheMissThenHit(t *testing.T) {
	src := &countingSource{}
	c, err := OpenBoltCache(filepath.Join(t.TempDir(), "cache.db"), src)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	k := Key{Accession: "NC_011521", Contact: "example@domain.com"}
	first, err := c.Fetch(ctx, k)
	require.NoError(t, err)
	second, err := c.Fetch(ctx, k)
	require.NoError(t, err)

	assert.EqualValues(t, 1, src.calls.Load())
	hits, misses := c.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 1, misses)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Seq, second.Seq)
	assert.True(t, second.Circular)
	require.Len(t, second.Features, 1)
	assert.Equal(t, feature.Reverse, second.Features[0].Strand)
	assert.Equal(t, []string{"geneX"}, second.Features[0].Qualifiers["gene"])
}

func TestBoltCacheContactIsPartOfKey(t *testing.T) {
	src := &countingSource{}
	c, err := OpenBoltCache(filepath.Join(t.TempDir(), "cache.db"), src)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	_, err = c.Fetch(ctx, Key{Accession: "A", Contact: "x@y"})
	require.NoError(t, err)
	_, err = c.Fetch(ctx, Key{Accession: "A", Contact: "z@y"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestBoltCachePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	k := Key{Accession: "A"}
	c, err := OpenBoltCache(path, &countingSource{})
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), k)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = OpenBoltCache(path, nil)
	require.NoError(t, err)
	defer c.Close()
	rec, err := c.Fetch(context.Background(), k)
	require.NoError(t, err)
	assert.Equal(t, "A.1", rec.ID)

	_, err = c.Fetch(context.Background(), Key{Accession: "B"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltCacheDoesNotStoreErrors(t *testing.T) {
	boom := errors.New("upstream down")
	src := &countingSource{fail: boom}
	c, err := OpenBoltCache(filepath.Join(t.TempDir(), "cache.db"), src)
	require.NoError(t, err)
	defer c.Close()

	for i := 0; i < 2; i++ {
		_, err = c.Fetch(context.Background(), Key{Accession: "A"})
		assert.ErrorIs(t, err, boom)
	}
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestBoltCacheCancelled(t *testing.T) {
	c, err := OpenBoltCache(filepath.Join(t.TempDir(), "cache.db"), &countingSource{})
	require.NoError(t, err)
	defer c.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Fetch(ctx, Key{Accession: "A"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoConcurrent(t *testing.T) {
	src := &countingSource{}
	m := NewMemo(src, 4)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := m.Fetch(context.Background(), Key{Accession: "A"})
			assert.NoError(t, err)
			assert.Equal(t, "A.1", rec.ID)
		}()
	}
	wg.Wait()
	// concurrent first fetches may race to the source; afterwards it is cached
	before := src.calls.Load()
	_, err := m.Fetch(context.Background(), Key{Accession: "A"})
	require.NoError(t, err)
	assert.Equal(t, before, src.calls.Load())
}

func TestMemoEvicts(t *testing.T) {
	src := &countingSource{}
	m := NewMemo(src, 1)
	ctx := context.Background()
	for _, acc := range []string{"A", "B", "A"} {
		_, err := m.Fetch(ctx, Key{Accession: acc})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, src.calls.Load())
}

func TestSourceFunc(t *testing.T) {
	var s Source = SourceFunc(func(context.Context, Key) (*Record, error) {
		return nil, ErrNotFound
	})
	_, err := s.Fetch(context.Background(), Key{})
	assert.ErrorIs(t, err, ErrNotFound)
}
