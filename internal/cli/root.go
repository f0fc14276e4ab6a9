// Package cli wires the seqviz commands. Each command resolves its settings
// through viper (defaults, config file, SEQVIZ_* env, flags) and reports
// failures as ExitErrors carrying the process exit code.
package cli

import (
	"github.com/spf13/cobra"

	"seqviz/internal/config"
	"seqviz/internal/version"
)

// NewRootCmd builds the command tree for one invocation.
func NewRootCmd(e *Env) *cobra.Command {
	d := config.Default()
	root := &cobra.Command{
		Use:   "seqviz",
		Short: "Turn sequence feature tables into sequence-viewer annotations",
		Long: `seqviz – feature annotation normalizer

Reads GenBank and GFF3 records, keeps the accepted feature kinds, and emits
display annotations (name, span, direction, type, deterministic color) plus
the props document a sequence viewer widget renders.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("seqviz version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.BoolP("quiet", "q", d.Quiet, "suppress warnings and progress")
	pf.StringP("output", "o", d.Output, "output: text | json | jsonl")
	pf.IntP("threads", "t", d.Threads, "worker threads (0=all CPUs)")

	root.AddCommand(
		newAnnotateCmd(e),
		newFetchCmd(e),
		newPropsCmd(e),
		newColorCmd(e),
		newOverlapCmd(e),
		newEnzymesCmd(e),
		newConfigCmd(e),
		newDocsCmd(e),
	)
	return root
}
