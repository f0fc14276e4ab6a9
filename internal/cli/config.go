// internal/cli/config.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqviz/internal/config"
)

func newConfigCmd(e *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or inspect the seqviz configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration as YAML (default ./seqviz.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return exitErr(ExitUsage, fmt.Errorf("%s exists (use --force to overwrite)", path))
				}
			}
			f, err := os.Create(path)
			if err != nil {
				return exitErr(ExitWrite, err)
			}
			err = config.WriteYAML(f, config.Default())
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return exitErr(ExitWrite, err)
			}
			_, err = fmt.Fprintf(e.Stdout, "wrote %s\n", path)
			return exitErr(ExitWrite, err)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (defaults, file, env, flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.WriteYAML(e.Stdout, cfg); err != nil {
				return exitErr(ExitWrite, err)
			}
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
