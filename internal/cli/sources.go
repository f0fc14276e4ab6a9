// internal/cli/sources.go
package cli

import (
	"context"
	"fmt"
	"os"

	"seqviz/internal/config"
	"seqviz/internal/record"
	"seqviz/internal/recordfs"
)

// openSource stacks memo → bolt cache (when configured) → directory.
func openSource(cfg config.Config) (record.Source, func() error, error) {
	var src record.Source = recordfs.DirSource{Dir: cfg.Records.Dir}
	closeFn := func() error { return nil }
	if cfg.Records.Cache != "" {
		bc, err := record.OpenBoltCache(cfg.Records.Cache, src)
		if err != nil {
			return nil, nil, err
		}
		src, closeFn = bc, bc.Close
	}
	return record.NewMemo(src, cfg.Records.MemoSize), closeFn, nil
}

func keyFor(cfg config.Config, acc string) record.Key {
	return record.Key{Accession: acc, Contact: cfg.Records.Contact}
}

// loadRecords treats arg as a file when one exists at that path ("-" is
// stdin) and as an accession otherwise.
func loadRecords(ctx context.Context, cfg config.Config, arg, fastaPath string) ([]*record.Record, error) {
	if arg == "-" {
		return recordfs.ReadFile(arg, fastaPath)
	}
	if st, err := os.Stat(arg); err == nil && st.Mode().IsRegular() {
		return recordfs.ReadFile(arg, fastaPath)
	}
	src, closeFn, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	rec, err := src.Fetch(ctx, keyFor(cfg, arg))
	if err != nil {
		return nil, err
	}
	return []*record.Record{rec}, nil
}

// pickRecord returns the record with the given id or name; an empty id
// picks the first record.
func pickRecord(recs []*record.Record, id string) (*record.Record, error) {
	if len(recs) == 0 {
		return nil, record.ErrNotFound
	}
	if id == "" {
		return recs[0], nil
	}
	for _, r := range recs {
		if r.ID == id || r.Name == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("record %q: %w", id, record.ErrNotFound)
}
