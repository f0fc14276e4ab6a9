// internal/cli/overlap.go
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"seqviz/internal/annotate"
	"seqviz/internal/output"
	"seqviz/internal/overlap"
	"seqviz/internal/writers"
)

func newOverlapCmd(e *Env) *cobra.Command {
	var (
		start, end, at      int
		contained, culled   bool
		recordID, fastaPath string
		noHeader            bool
		noMatchCode         int
	)
	cmd := &cobra.Command{
		Use:   "overlap ACCESSION|FILE",
		Short: "Query a record's annotations by window or containment",
		Long: `Indexes the record's annotations in an interval tree and prints those
overlapping --start/--end (half-open), covering --at, enclosed by another
annotation (--contained), or everything that is not enclosed (--culled).`,
		Example: `  seqviz overlap plasmid.gb --start 100 --end 250
  seqviz overlap plasmid.gb --at 1200 -o json
  seqviz overlap plasmid.gb --contained`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := 0
			for _, on := range []bool{cmd.Flags().Changed("start") || cmd.Flags().Changed("end"), at >= 0, contained, culled} {
				if on {
					modes++
				}
			}
			if modes != 1 {
				return exitErr(ExitUsage, errors.New("choose exactly one of --start/--end, --at, --contained, --culled"))
			}
			cfg, err := e.load(cmd.Flags(), recordBinds, map[string]string{"accepted-kinds": "kinds"})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			recs, err := loadRecords(ctx, cfg, args[0], fastaPath)
			if err != nil {
				return exitErr(ExitUsage, err)
			}
			rec, err := pickRecord(recs, recordID)
			if err != nil {
				return exitErr(ExitUsage, err)
			}
			annots, err := e.project(ctx, cfg, args[0], rec)
			if err != nil {
				return err
			}

			ix := overlap.New(annots)
			var hits []annotate.Annotation
			switch {
			case contained:
				hits = ix.Contained()
			case culled:
				hits = ix.Culled()
			case at >= 0:
				hits = ix.At(at)
			default:
				if end <= start {
					return exitErr(ExitUsage, errors.New("--end must be greater than --start"))
				}
				hits = ix.Overlapping(start, end)
			}

			in, done := writers.StartAnnotationWriter(e.Stdout, cfg.Output, false, !noHeader, len(hits))
			for _, a := range hits {
				in <- output.Row{SourceFile: args[0], RecordID: rec.ID, Annotation: a}
			}
			close(in)
			if werr := <-done; werr != nil {
				return exitErr(ExitWrite, werr)
			}
			if len(hits) == 0 {
				return noMatch(noMatchCode)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	addRecordFlags(fs)
	fs.IntVar(&start, "start", 0, "window start (0-based)")
	fs.IntVar(&end, "end", 0, "window end (exclusive)")
	fs.IntVar(&at, "at", -1, "single position (0-based)")
	fs.BoolVar(&contained, "contained", false, "annotations enclosed by another annotation")
	fs.BoolVar(&culled, "culled", false, "annotations not enclosed by any other")
	fs.StringSlice("kinds", []string{"CDS"}, "feature kinds to index")
	fs.StringVar(&recordID, "record", "", "record id or name when the file holds several")
	fs.StringVar(&fastaPath, "fasta", "", "FASTA sequences for a GFF3 input")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	fs.IntVar(&noMatchCode, "no-match-exit-code", ExitNoMatch, "exit code when nothing matches")
	return cmd
}
