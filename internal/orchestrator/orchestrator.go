// Package orchestrator drives the sandbox run pipeline: create, discover,
// await readiness, provision, session, teardown. It owns the lifecycle
// guarantees; the control plane and the agent provisioner do the work.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ambient-labs/vibectl/internal/agent"
	"github.com/ambient-labs/vibectl/internal/audit"
	"github.com/ambient-labs/vibectl/internal/config"
	"github.com/ambient-labs/vibectl/internal/controlplane"
	"github.com/ambient-labs/vibectl/internal/errors"
	"github.com/ambient-labs/vibectl/internal/logging"
)

// Discovery retries. Creation can take a moment to show up in list output.
const (
	discoverAttempts   = 5
	discoverRetryDelay = 2 * time.Second
)

// Request describes one sandbox run.
type Request struct {
	Repo    string
	Branch  string
	Machine string

	// Prompt is passed to the assistant one-shot; empty means an
	// interactive session.
	Prompt string

	// DisplayName tags the sandbox in control-plane listings.
	DisplayName string
}

// Orchestrator runs the sandbox pipeline.
type Orchestrator struct {
	Client      controlplane.Client
	Provisioner *agent.Provisioner
	Config      *config.Config
	Reporter    Reporter

	// Audit receives lifecycle events when non-nil.
	Audit *audit.Logger

	// RunID identifies this run in audit logs.
	RunID string

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator with the given collaborators.
func New(client controlplane.Client, prov *agent.Provisioner, cfg *config.Config, reporter Reporter) *Orchestrator {
	if reporter == nil {
		reporter = NewPlainReporter()
	}
	return &Orchestrator{
		Client:      client,
		Provisioner: prov,
		Config:      cfg,
		Reporter:    reporter,
		sleep:       sleepCtx,
	}
}

// sleepCtx sleeps for d or until the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes the full pipeline for one request.
//
// Teardown runs exactly once on every exit path once a sandbox handle has
// been obtained, including cancellation and panics. Failures before the
// handle exists (create, discovery) return without teardown because there
// is nothing to tear down.
func (o *Orchestrator) Run(ctx context.Context, req Request) (err error) {
	defer o.Reporter.Close()

	if err := o.create(ctx, req); err != nil {
		return err
	}

	name, err := o.discover(ctx, req.Repo)
	if err != nil {
		return err
	}

	// Handle obtained: from here on teardown is owed, whatever happens.
	// A fresh context keeps a canceled run context from skipping it.
	defer o.teardown(context.Background(), name)

	if err := o.awaitReady(ctx, name); err != nil {
		return err
	}

	if err := o.provision(ctx, name); err != nil {
		return err
	}

	return o.session(ctx, name, req.Prompt)
}

// create requests the sandbox and waits for the control plane to register it.
func (o *Orchestrator) create(ctx context.Context, req Request) error {
	o.Reporter.Stage(StageCreating, req.Repo)
	o.auditEvent(audit.EventCreate, "", fmt.Sprintf("repo=%s branch=%s machine=%s", req.Repo, req.Branch, req.Machine))

	err := o.Client.Create(ctx, controlplane.CreateOptions{
		Repo:            req.Repo,
		Branch:          req.Branch,
		Machine:         req.Machine,
		DisplayName:     req.DisplayName,
		IdleTimeout:     o.Config.IdleTimeout,
		RetentionPeriod: o.Config.RetentionPeriod,
	})
	if err != nil {
		o.auditEvent(audit.EventError, "", err.Error())
		return errors.CreateFailed(err)
	}

	o.Reporter.Stage(StageSettling, "")
	return o.sleep(ctx, o.Config.SettleDelay)
}

// discover finds the sandbox the create call produced. The control plane
// assigns names itself, so we list and match on the repository.
func (o *Orchestrator) discover(ctx context.Context, repo string) (string, error) {
	o.Reporter.Stage(StageDiscovering, repo)

	for attempt := 1; attempt <= discoverAttempts; attempt++ {
		sandboxes, err := o.Client.List(ctx)
		if err != nil {
			logging.Debug("list failed during discovery", "attempt", attempt, "error", err)
		} else if name := pickSandbox(sandboxes, repo); name != "" {
			o.Reporter.Stage(StageDiscovered, name)
			o.auditEvent(audit.EventDiscover, name, "")
			return name, nil
		}
		if attempt < discoverAttempts {
			if err := o.sleep(ctx, discoverRetryDelay); err != nil {
				return "", err
			}
		}
	}

	err := errors.DiscoveryFailed(repo)
	o.auditEvent(audit.EventError, "", err.Error())
	return "", err
}

// pickSandbox selects the sandbox to use: the first available one matching
// the repository, falling back to the most recently created match.
func pickSandbox(sandboxes []controlplane.Sandbox, repo string) string {
	first := ""
	for _, sb := range sandboxes {
		if !matchesRepo(sb, repo) {
			continue
		}
		if first == "" {
			first = sb.Name
		}
		if sb.Available() {
			return sb.Name
		}
	}
	return first
}

// matchesRepo reports whether a list entry belongs to the repository. The
// raw line is checked too because the parsed repo column is best-effort.
func matchesRepo(sb controlplane.Sandbox, repo string) bool {
	return sb.Repo == repo || strings.Contains(sb.Raw, repo)
}

// awaitReady polls the sandbox state until it reports available or the
// attempt budget runs out. Exhausting the budget is not fatal: the ssh
// layer has its own connection handling, so we proceed with a warning.
func (o *Orchestrator) awaitReady(ctx context.Context, name string) error {
	o.Reporter.Stage(StageAwaitingReady, name)

	for attempt := 1; attempt <= o.Config.PollAttempts; attempt++ {
		state, err := o.Client.State(ctx, name)
		if err != nil {
			logging.Debug("state check failed", "attempt", attempt, "error", err)
			state = controlplane.StateUnknown
		}
		o.Reporter.Poll(attempt, o.Config.PollAttempts, state)

		if state == controlplane.StateAvailable {
			o.Reporter.Stage(StageReady, name)
			o.auditEvent(audit.EventReady, name, fmt.Sprintf("attempts=%d", attempt))
			return nil
		}

		if err := o.sleep(ctx, o.Config.PollInterval); err != nil {
			return err
		}
	}

	logging.UserWarning("sandbox %s not ready after %d attempts, proceeding anyway", name, o.Config.PollAttempts)
	o.auditEvent(audit.EventReady, name, "exhausted")
	return nil
}

// provision installs the assistant and persists the credential. The
// credential check comes first: without one, no remote command runs.
func (o *Orchestrator) provision(ctx context.Context, name string) error {
	if !o.Config.HasCredential() {
		err := errors.CredentialMissing(config.CredentialKey)
		o.auditEvent(audit.EventError, name, err.Error())
		return err
	}

	o.Reporter.Stage(StageProvisioning, name)

	if err := o.Provisioner.Install(ctx, name); err != nil {
		o.auditEvent(audit.EventError, name, err.Error())
		return err
	}
	if err := o.Provisioner.PersistCredential(ctx, name, o.Config.Credential); err != nil {
		o.auditEvent(audit.EventError, name, err.Error())
		return err
	}
	if !o.Provisioner.VerifyCredential(ctx, name) {
		logging.UserWarning("credential verification failed, continuing")
	}

	o.auditEvent(audit.EventProvision, name, "")
	return nil
}

// session hands the terminal to the assistant until it exits.
func (o *Orchestrator) session(ctx context.Context, name, prompt string) error {
	o.Reporter.Stage(StageInSession, name)
	o.auditEvent(audit.EventSession, name, fmt.Sprintf("interactive=%t", prompt == ""))

	if err := o.Provisioner.Launch(ctx, name, o.Config.Credential, prompt); err != nil {
		o.auditEvent(audit.EventError, name, err.Error())
		return err
	}
	return nil
}

// teardown force-deletes the sandbox. Failures are reported but never
// override the run's outcome; a leaked sandbox expires via its retention
// period.
func (o *Orchestrator) teardown(ctx context.Context, name string) {
	o.Reporter.Stage(StageTearingDown, name)

	if err := o.Client.Delete(ctx, name); err != nil {
		logging.UserWarning("failed to delete sandbox %s: %v", name, err)
		o.auditEvent(audit.EventError, name, err.Error())
		return
	}

	o.Reporter.Stage(StageTerminated, name)
	o.auditEvent(audit.EventTeardown, name, "")
}

func (o *Orchestrator) auditEvent(t audit.EventType, sandbox, details string) {
	if o.Audit == nil {
		return
	}
	if err := o.Audit.LogEvent(t, o.RunID, sandbox, details); err != nil {
		logging.Debug("audit write failed", "error", err)
	}
}
