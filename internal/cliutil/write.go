// Package cliutil provides small helpers for CLI output.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w, reporting a failed write on
// stderr instead of returning it; usage text and examples are not worth
// an error path at every call site.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
