// internal/cli/enzymes.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqviz/internal/enzyme"
	"seqviz/internal/jsonutil"
	"seqviz/internal/output"
	"seqviz/pkg/api"
)

func newEnzymesCmd(e *Env) *cobra.Command {
	var noHeader bool
	cmd := &cobra.Command{
		Use:   "enzymes",
		Short: "List the restriction enzymes accepted by --enzymes",
		Long: `Lists every enzyme by name with its recognition site (IUPAC, 5'→3') and
the top and bottom strand cut offsets from the start of the site.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags())
			if err != nil {
				return err
			}
			all := enzyme.All()
			list := make([]api.EnzymeV1, 0, len(all))
			for _, z := range all {
				list = append(list, api.EnzymeV1{Name: z.Name, Site: z.Site, FCut: z.FCut, RCut: z.RCut})
			}
			if cfg.Output == output.FormatText {
				err = writeEnzymeTSV(e, list, !noHeader)
			} else {
				err = jsonutil.Encode(e.Stdout, list, cfg.Output == output.FormatJSON)
			}
			if err != nil {
				return exitErr(ExitWrite, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}

func writeEnzymeTSV(e *Env, list []api.EnzymeV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(e.Stdout, "name\tsite\tfcut\trcut"); err != nil {
			return err
		}
	}
	for _, z := range list {
		if _, err := fmt.Fprintf(e.Stdout, "%s\t%s\t%d\t%d\n", z.Name, z.Site, z.FCut, z.RCut); err != nil {
			return err
		}
	}
	return nil
}
