// Package system provides abstractions for OS command execution to enable testing.
package system

import "context"

// CommandExecutor abstracts command execution for testability.
//
// Note there is deliberately no exec-and-replace primitive: every command,
// including the interactive session, must return control to the caller so
// that teardown can run afterward.
type CommandExecutor interface {
	// Execute runs a command and returns its combined output.
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)

	// ExecuteInteractive runs a command with stdin/stdout/stderr connected
	// to the terminal and blocks until it exits.
	ExecuteInteractive(ctx context.Context, name string, args ...string) error
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementation.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}
