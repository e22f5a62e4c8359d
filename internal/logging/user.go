package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing status lines, separate from the structured debug log.
// Progress and success go to stdout; warnings and errors go to stderr so
// piped output stays clean. Never pass the credential value here.

var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// UserInfo prints a pipeline progress line.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(userOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a completed-step line.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(userOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a non-fatal problem, such as a failed credential
// verification or a teardown error.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(userErr, "⚠ "+format+"\n", args...)
}

// UserError prints a run-ending problem.
func UserError(format string, args ...any) {
	fmt.Fprintf(userErr, "✗ "+format+"\n", args...)
}
