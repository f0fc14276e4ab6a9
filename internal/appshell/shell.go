// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a command-line entry point with a context cancelled on
// SIGINT/SIGTERM and exits with its code. SIGPIPE is ignored so writes to a
// closed pipe come back as EPIPE, which the writers treat as a clean stop.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
