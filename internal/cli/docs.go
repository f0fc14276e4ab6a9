// internal/cli/docs.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var errNoDocsDir = errors.New("docs: output directory required")

func newDocsCmd(e *Env) *cobra.Command {
	return &cobra.Command{
		Use:    "docs DIR",
		Short:  "Generate Markdown reference pages for every command",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if dir == "" {
				return exitErr(ExitUsage, errNoDocsDir)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return exitErr(ExitWrite, err)
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			if err := doc.GenMarkdownTree(root, dir); err != nil {
				return exitErr(ExitWrite, err)
			}
			_, err := fmt.Fprintf(e.Stdout, "wrote docs to %s\n", dir)
			return exitErr(ExitWrite, err)
		},
	}
}
