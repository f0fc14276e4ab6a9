// internal/cli/annotate.go
package cli

import (
	"github.com/spf13/cobra"

	"seqviz/internal/cliutil"
	"seqviz/internal/output"
	"seqviz/internal/recordfs"
	"seqviz/internal/runutil"
	"seqviz/internal/writers"
)

type inputFile struct {
	path  string
	fasta string
}

func newAnnotateCmd(e *Env) *cobra.Command {
	var (
		gffPath, fastaPath string
		sortOut, noHeader  bool
		noMatchCode        int
	)
	cmd := &cobra.Command{
		Use:   "annotate [FILE...]",
		Short: "Project record features into viewer annotations",
		Long: `Reads GenBank, GFF3 (+FASTA) or FASTA files and prints one display
annotation per accepted feature: name, span, direction, type and color.

Names come from the first non-empty name key (default gene, then product),
falling back to the feature kind. Colors are derived from the name.`,
		Example: `  seqviz annotate plasmid.gb
  seqviz annotate --kinds CDS,gene -o jsonl records/*.gbk
  seqviz annotate --gff genes.gff3 --fasta genome.fa --error-policy collect
  zcat big.gb.gz | seqviz annotate -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags(), map[string]string{
				"accepted-kinds": "kinds",
				"name-keys":      "name-keys",
				"error-policy":   "error-policy",
			})
			if err != nil {
				return err
			}
			paths, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return exitErr(ExitUsage, err)
			}
			var inputs []inputFile
			for _, p := range paths {
				inputs = append(inputs, inputFile{path: p})
			}
			if gffPath != "" {
				inputs = append(inputs, inputFile{path: gffPath, fasta: fastaPath})
			}
			if len(inputs) == 0 {
				return exitErr(ExitUsage, errNoInput)
			}

			ctx := cmd.Context()
			threads := runutil.EffectiveThreads(cfg.Threads)
			in, done := writers.StartAnnotationWriter(e.Stdout, cfg.Output, sortOut, !noHeader, threads*4)
			total := 0
			var runErr error
		loop:
			for _, inp := range inputs {
				recs, err := recordfs.ReadFile(inp.path, inp.fasta)
				if err != nil {
					runErr = exitErr(ExitUsage, err)
					break
				}
				for _, rec := range recs {
					annots, err := e.project(ctx, cfg, inp.path, rec)
					if err != nil {
						runErr = err
						break loop
					}
					for _, a := range annots {
						select {
						case in <- output.Row{SourceFile: inp.path, RecordID: rec.ID, Annotation: a}:
							total++
						case <-ctx.Done():
							runErr = ctx.Err()
							break loop
						}
					}
				}
			}
			close(in)

			if werr := <-done; werr != nil && !writers.IsBrokenPipe(werr) {
				return exitErr(ExitWrite, werr)
			}
			if runErr != nil {
				return runErr
			}
			if total == 0 {
				return noMatch(noMatchCode)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringSlice("kinds", []string{"CDS"}, "feature kinds to keep (repeatable or comma separated)")
	fs.StringSlice("name-keys", []string{"gene", "product"}, "qualifier keys tried for the name, in order")
	fs.String("error-policy", "abort", "malformed features: abort | collect")
	fs.StringVar(&gffPath, "gff", "", "GFF3 feature file")
	fs.StringVar(&fastaPath, "fasta", "", "FASTA sequences for --gff")
	fs.BoolVar(&sortOut, "sort", false, "sort output by source, record, start, end, name")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	fs.IntVar(&noMatchCode, "no-match-exit-code", ExitNoMatch, "exit code when no annotations are produced")
	return cmd
}
