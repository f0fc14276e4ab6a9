// internal/cli/props.go
package cli

import (
	"github.com/spf13/cobra"

	"seqviz/internal/cmdutil"
	"seqviz/internal/config"
	"seqviz/internal/jsonutil"
	"seqviz/internal/viewer"
)

var viewerBinds = map[string]string{
	"viewer.topology":        "viewer",
	"viewer.zoom":            "zoom",
	"viewer.enzymes":         "enzymes",
	"viewer.show-complement": "show-complement",
	"viewer.show-index":      "show-index",
	"viewer.search-mismatch": "mismatch",
	"accepted-kinds":         "kinds",
}

func newPropsCmd(e *Env) *cobra.Command {
	var (
		query, recordID, fastaPath string
		resolve, compact           bool
	)
	cmd := &cobra.Command{
		Use:   "props ACCESSION|FILE",
		Short: "Build the viewer props document for one record",
		Long: `Builds the JSON props a sequence viewer widget takes for one record:
sequence, name, annotations, layout, zoom, search, enzymes.

With --resolve the output also carries what the widget computes from those
props: search matches and enzyme cut sites.`,
		Example: `  seqviz props plasmid.gb --viewer circular --search GAATTC --resolve
  seqviz props NC_011521 --dir records --enzymes EcoRI,BamHI`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags(), recordBinds, viewerBinds)
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
			props, warns, err := viewer.Build(rec, annots, cfg.ViewerSettings(query))
			if err != nil {
				return exitErr(ExitUsage, err)
			}
			for _, w := range warns {
				cmdutil.Warnf(e.Stderr, cfg.Quiet, "%s", w)
			}

			var doc any = props
			if resolve {
				st, err := viewer.Resolve(props)
				if err != nil {
					return exitErr(ExitUsage, err)
				}
				st.Warnings = warns
				doc = st
			}
			if err := jsonutil.Encode(e.Stdout, doc, !compact); err != nil {
				return exitErr(ExitWrite, err)
			}
			return nil
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	addRecordFlags(fs)
	fs.StringVar(&recordID, "record", "", "record id or name when the file holds several")
	fs.StringVar(&fastaPath, "fasta", "", "FASTA sequences for a GFF3 input")
	fs.StringSlice("kinds", d.AcceptedKinds, "feature kinds to annotate")
	fs.String("viewer", d.Viewer.Topology, "layout: linear | circular | both | both_flip")
	fs.Int("zoom", d.Viewer.Zoom, "linear zoom, 0..100")
	fs.StringSlice("enzymes", d.Viewer.Enzymes, "restriction enzymes to show")
	fs.Bool("show-complement", d.Viewer.ShowComplement, "show the complement strand")
	fs.Bool("show-index", d.Viewer.ShowIndex, "show the index ruler")
	fs.StringVar(&query, "search", "", "search query (IUPAC for nucleotides)")
	fs.Int("mismatch", d.Viewer.SearchMismatch, "mismatches allowed in search")
	fs.BoolVar(&resolve, "resolve", false, "add search matches and cut sites")
	fs.BoolVar(&compact, "compact", false, "single-line JSON")
	return cmd
}
