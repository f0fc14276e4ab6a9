// internal/cli/fetch.go
package cli

import (
	"github.com/spf13/cobra"

	"seqviz/internal/cmdutil"
	"seqviz/internal/viewer"
	"seqviz/internal/writers"
	"seqviz/pkg/api"
)

func newFetchCmd(e *Env) *cobra.Command {
	var noHeader bool
	cmd := &cobra.Command{
		Use:   "fetch ACCESSION...",
		Short: "Resolve accessions through the record cache and summarize them",
		Long: `Looks each accession up in memory, then in the bolt cache (--cache),
then in the record directory (--dir), storing what it finds in the cache.
Prints one summary line per record.`,
		Example: `  seqviz fetch --dir records --cache records.db NC_011521 pUC19`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags(), recordBinds)
			if err != nil {
				return err
			}
			src, closeFn, err := openSource(cfg)
			if err != nil {
				return exitErr(ExitUsage, err)
			}
			defer closeFn()

			ctx := cmd.Context()
			bar := cmdutil.StartProgress(e.Stderr, cfg.Quiet, len(args))
			list := make([]api.RecordSummaryV1, 0, len(args))
			for _, acc := range args {
				rec, err := src.Fetch(ctx, keyFor(cfg, acc))
				if err != nil {
					bar.Finish()
					return exitErr(ExitUsage, err)
				}
				topo := "linear"
				if rec.Circular {
					topo = "circular"
				}
				list = append(list, api.RecordSummaryV1{
					Accession: acc,
					ID:        rec.ID,
					Length:    rec.Len(),
					Topology:  topo,
					Alphabet:  string(viewer.AlphabetOf(rec)),
					Features:  len(rec.Features),
					Accepted:  countAccepted(cfg, rec),
				})
				bar.Increment()
			}
			bar.Finish()

			if err := writers.WriteSummaryList(e.Stdout, cfg.Output, !noHeader, list); err != nil {
				return exitErr(ExitWrite, err)
			}
			return nil
		},
	}
	addRecordFlags(cmd.Flags())
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	return cmd
}
