// internal/cli/color.go
package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seqviz/internal/annotate"
	"seqviz/internal/jsonutil"
	"seqviz/internal/output"
	"seqviz/pkg/api"
)

func newColorCmd(e *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color NAME...",
		Short: "Print the display color derived from each name",
		Long: `Prints name<TAB>#rrggbb. The color is the first six hex digits of the
MD5 digest of the name, so it never changes between runs. Use "-" to read
one name per line from stdin.`,
		Example: `  seqviz color geneX dnaA
  cut -f3 annotations.tsv | seqviz color -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags())
			if err != nil {
				return err
			}
			var names []string
			for _, a := range args {
				if a != "-" {
					names = append(names, a)
					continue
				}
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					names = append(names, strings.TrimRight(sc.Text(), "\r"))
				}
				if err := sc.Err(); err != nil {
					return exitErr(ExitUsage, err)
				}
			}

			list := make([]api.NameColorV1, 0, len(names))
			for _, n := range names {
				list = append(list, api.NameColorV1{Name: n, Color: annotate.Color(n)})
			}
			switch cfg.Output {
			case output.FormatJSON:
				err = jsonutil.EncodePretty(e.Stdout, list)
			case output.FormatJSONL:
				for _, c := range list {
					if err = jsonutil.Encode(e.Stdout, c, false); err != nil {
						break
					}
				}
			default:
				for _, c := range list {
					if _, err = fmt.Fprintf(e.Stdout, "%s\t%s\n", c.Name, c.Color); err != nil {
						break
					}
				}
			}
			if err != nil {
				return exitErr(ExitWrite, err)
			}
			return nil
		},
	}
	return cmd
}
