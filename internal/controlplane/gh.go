package controlplane

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ambient-labs/vibectl/internal/logging"
	"github.com/ambient-labs/vibectl/internal/system"
)

// GHClient implements Client by shelling out to the gh CLI's codespace
// subcommands. Authentication is gh's concern; we assume the binary is
// logged in.
type GHClient struct {
	// Bin is the gh binary to invoke.
	Bin string

	// Executor abstracts command execution for testability.
	Executor system.CommandExecutor
}

// NewGHClient creates a GHClient using the default command executor.
func NewGHClient(bin string) *GHClient {
	if bin == "" {
		bin = "gh"
	}
	return &GHClient{Bin: bin, Executor: system.DefaultExecutor()}
}

// run executes a gh codespace subcommand and returns its combined output.
// Only the subcommand is logged: ssh scripts embed the credential.
func (c *GHClient) run(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{"codespace"}, args...)
	logging.Debug("running control-plane command", "bin", c.Bin, "subcommand", args[0])

	out, err := c.Executor.Execute(ctx, c.Bin, full...)
	if err != nil {
		return out, fmt.Errorf("%s codespace %s: %s: %w", c.Bin, args[0], strings.TrimSpace(string(out)), err)
	}
	return out, nil
}

// Create requests a new sandbox from the control plane.
func (c *GHClient) Create(ctx context.Context, opts CreateOptions) error {
	args := []string{
		"create",
		"-R", opts.Repo,
		"-b", opts.Branch,
		"-m", opts.Machine,
		"--idle-timeout", formatDuration(opts.IdleTimeout),
		"--retention-period", formatDuration(opts.RetentionPeriod),
	}
	if opts.DisplayName != "" {
		args = append(args, "--display-name", opts.DisplayName)
	}

	_, err := c.run(ctx, args...)
	return err
}

// List returns all sandboxes visible to the caller.
func (c *GHClient) List(ctx context.Context) ([]Sandbox, error) {
	out, err := c.run(ctx, "list")
	if err != nil {
		return nil, err
	}
	return parseList(string(out)), nil
}

// State returns the lifecycle state of a sandbox. It first asks the view
// subcommand; when that output yields nothing recognizable it falls back
// to scanning the list output, which uses a different column layout.
func (c *GHClient) State(ctx context.Context, name string) (State, error) {
	out, err := c.Executor.Execute(ctx, c.Bin, "codespace", "view", "-c", name)
	if err != nil {
		return StateUnknown, fmt.Errorf("viewing sandbox %s: %w", name, err)
	}

	if state := parseViewState(string(out)); state != StateUnknown {
		return state, nil
	}

	// Some gh versions omit the state field from view output.
	listOut, err := c.Executor.Execute(ctx, c.Bin, "codespace", "list", "-c", name)
	if err != nil {
		return StateUnknown, nil
	}
	return parseListState(string(listOut), name), nil
}

// Exec runs a shell script inside the sandbox over ssh.
func (c *GHClient) Exec(ctx context.Context, name string, script string) ([]byte, error) {
	return c.run(ctx, "ssh", "-c", name, "--", "bash", "-c", script)
}

// Session runs a shell script inside the sandbox with a TTY attached. The
// args after "--" are passed to ssh itself, so -t forces TTY allocation
// and env seeds the remote process environment.
func (c *GHClient) Session(ctx context.Context, name string, env []string, script string) error {
	args := []string{"codespace", "ssh", "-c", name, "--", "-t"}
	if len(env) > 0 {
		args = append(args, "env")
		args = append(args, env...)
	}
	args = append(args, "bash", "-c", script)

	logging.Debug("starting interactive session", "sandbox", name)
	return c.Executor.ExecuteInteractive(ctx, c.Bin, args...)
}

// Delete force-removes a sandbox.
func (c *GHClient) Delete(ctx context.Context, name string) error {
	_, err := c.run(ctx, "delete", "-c", name, "--force")
	return err
}

// formatDuration renders a duration the way the control plane expects,
// without trailing zero units ("5m", not "5m0s").
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}

// Ensure GHClient implements Client.
var _ Client = (*GHClient)(nil)
