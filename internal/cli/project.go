// internal/cli/project.go
package cli

import (
	"context"
	"fmt"

	"seqviz/internal/annotate"
	"seqviz/internal/cmdutil"
	"seqviz/internal/config"
	"seqviz/internal/record"
	"seqviz/internal/runutil"
)

// project runs the projector over rec. Under the collect policy each
// malformed feature becomes a warning; under abort the first one is
// returned as an input error.
func (e *Env) project(ctx context.Context, cfg config.Config, label string, rec *record.Record) ([]annotate.Annotation, error) {
	opts := cfg.ProjectOptions()
	annots, err := annotate.ProjectParallel(ctx, rec.Features, opts, runutil.EffectiveThreads(cfg.Threads))
	if err == nil {
		return annots, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if opts.Policy == annotate.AbortOnError {
		return nil, exitErr(ExitUsage, fmt.Errorf("%s: record %s: %w", label, rec.ID, err))
	}
	for _, fe := range unjoin(err) {
		cmdutil.Warnf(e.Stderr, cfg.Quiet, "%s: record %s: skipped %v", label, rec.ID, fe)
	}
	return annots, nil
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// countAccepted is the number of well-formed accepted features in rec.
func countAccepted(cfg config.Config, rec *record.Record) int {
	opts := cfg.ProjectOptions()
	opts.Policy = annotate.CollectErrors
	annots, _ := annotate.Project(rec.Features, opts)
	return len(annots)
}

