package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cedi-search/addtarget/internal/config"
)

// Exit codes returned by Run.
const (
	ExitSuccess    = 0 // Target generated
	ExitUsage      = 1 // Wrong argument count, invalid target name, or bad flag
	ExitFilesystem = 2 // Directory listing, creation, or file write failed
	ExitConfig     = 3 // Config file or environment failed validation
)

// msgArgCount is printed verbatim when the argument count is wrong.
const msgArgCount = "Requires exactly one argument"

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error {
	return &usageError{err: err}
}

// report prints err to the appropriate stream and maps it to an exit code.
// Usage errors go to stdout; everything else goes to stderr.
func report(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *usageError
	switch {
	case errors.As(err, &ue):
		fmt.Fprintln(stdout, ue.Error())
		return ExitUsage
	case errors.Is(err, config.ErrInvalidConfig):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitConfig
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFilesystem
	}
}
