// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"

	"seqviz/internal/cli"
	"seqviz/internal/cmdutil"
	"seqviz/internal/writers"
)

// RunContext executes one seqviz invocation and returns its exit code.
// Stdout is buffered and flushed before returning; a broken pipe downstream
// counts as success.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	e := cli.NewEnv(outw, stderr)
	root := cli.NewRootCmd(e)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	code := cli.ExitCode(err)

	if ferr := outw.Flush(); ferr != nil && !writers.IsBrokenPipe(ferr) {
		cmdutil.Errorf(stderr, "%v", ferr)
		if code == cli.ExitOK {
			code = cli.ExitWrite
		}
	}

	var ee *cli.ExitError
	switch {
	case err == nil, code == cli.ExitCancel:
	case errors.As(err, &ee):
		if ee.Err != nil {
			cmdutil.Errorf(stderr, "%v", ee.Err)
		}
	default:
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = io.WriteString(stderr, "Run 'seqviz --help' for usage.\n")
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
