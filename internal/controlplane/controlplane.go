// Package controlplane defines the sandbox control-plane interface for
// vibectl. The control plane is an external CLI (gh) that owns the actual
// sandbox lifecycle; this abstraction wraps it and enables comprehensive
// testing through mocking.
package controlplane

import (
	"context"
	"time"
)

// State represents the lifecycle state of a sandbox as reported by the
// control plane.
type State string

const (
	StateAvailable State = "Available"
	StateCreating  State = "Creating"
	StateStarting  State = "Starting"
	StateShutdown  State = "Shutdown"
	StateStopped   State = "Stopped"
	StateUnknown   State = "Unknown"
)

// Sandbox holds what we know about a sandbox from a list entry. Raw keeps
// the original line because the control plane's column layout is not
// guaranteed stable and some checks work on the whole line.
type Sandbox struct {
	Name  string
	Repo  string
	State State
	Raw   string
}

// Available reports whether the sandbox is ready for connections.
func (s Sandbox) Available() bool {
	return s.State == StateAvailable
}

// CreateOptions holds options for creating a sandbox.
type CreateOptions struct {
	Repo    string
	Branch  string
	Machine string

	// DisplayName is an operator-visible tag; empty means none.
	DisplayName string

	// Lifetime hints enforced by the control plane.
	IdleTimeout     time.Duration
	RetentionPeriod time.Duration
}

// Client is the interface sandbox control-plane backends must implement.
type Client interface {
	// Create requests a new sandbox. The control plane assigns the name;
	// it is discovered afterwards via List.
	Create(ctx context.Context, opts CreateOptions) error

	// List returns all sandboxes visible to the caller.
	List(ctx context.Context) ([]Sandbox, error)

	// State returns the current lifecycle state of a sandbox.
	State(ctx context.Context, name string) (State, error)

	// Exec runs a shell script inside the sandbox and returns its
	// combined output.
	Exec(ctx context.Context, name string, script string) ([]byte, error)

	// Session runs a shell script inside the sandbox with a TTY attached
	// and blocks until it exits. env entries are KEY=VALUE pairs exported
	// into the remote process.
	Session(ctx context.Context, name string, env []string, script string) error

	// Delete force-removes a sandbox.
	Delete(ctx context.Context, name string) error
}
