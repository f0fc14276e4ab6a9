// internal/cli/exit.go
package cli

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes shared by every command.
const (
	ExitOK      = 0
	ExitNoMatch = 1 // default for --no-match-exit-code
	ExitUsage   = 2 // bad flags, arguments, config or input data
	ExitWrite   = 3 // output could not be written
	ExitCancel  = 130
)

// ExitError carries a process exit code. A nil Err exits silently.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitErr(code int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

// noMatch turns an empty result into the configured exit code (0 = success).
func noMatch(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// ExitCode maps an Execute error to the process exit code. Errors that are
// not ExitErrors come from cobra's own argument and flag checks.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancel
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}

var errNoInput = errors.New("no input files (give FILE... or --gff)")
