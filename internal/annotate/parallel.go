// internal/annotate/parallel.go
package annotate

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"seqviz/internal/feature"
)

// minParallel is the input size below which ProjectParallel runs inline.
const minParallel = 256

type slot struct {
	a   Annotation
	ok  bool
	err error
}

// ProjectParallel is Project spread over threads workers (<=0 → NumCPU).
// Each feature is independent, so workers fill per-index slots and the
// result is merged in input order. Output and errors match Project exactly.
func ProjectParallel(ctx context.Context, features []feature.SequenceFeature, opts Options, threads int) ([]Annotation, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads == 1 || len(features) < minParallel {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Project(features, opts)
	}

	p := newProjector(opts)
	slots := make([]slot, len(features))

	// Contiguous blocks keep each worker on its own cache lines.
	block := (len(features) + threads - 1) / threads
	jobs := make(chan [2]int, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-jobs:
					if !ok {
						return
					}
					for i := r[0]; i < r[1]; i++ {
						a, accepted, err := p.one(i, &features[i])
						slots[i] = slot{a: a, ok: accepted, err: err}
					}
				}
			}
		}()
	}

feed:
	for lo := 0; lo < len(features); lo += block {
		hi := lo + block
		if hi > len(features) {
			hi = len(features)
		}
		select {
		case jobs <- [2]int{lo, hi}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Annotation, 0, len(features))
	var errs []error
	for _, s := range slots {
		if s.err != nil {
			if opts.Policy == AbortOnError {
				return nil, s.err
			}
			errs = append(errs, s.err)
			continue
		}
		if s.ok {
			out = append(out, s.a)
		}
	}
	return out, errors.Join(errs...)
}
