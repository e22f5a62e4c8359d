// Package agent installs and launches the Claude Code assistant inside a
// sandbox. All operations run remotely through the control plane; nothing
// here touches the local machine.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ambient-labs/vibectl/internal/controlplane"
	"github.com/ambient-labs/vibectl/internal/errors"
	"github.com/ambient-labs/vibectl/internal/logging"
)

// Provisioner prepares a sandbox for assistant sessions: it installs the
// assistant binary, persists the API credential, and launches sessions.
type Provisioner struct {
	Client controlplane.Client

	// CredentialKey is the environment variable the assistant reads its
	// API key from.
	CredentialKey string
}

// NewProvisioner creates a Provisioner for the given control plane.
func NewProvisioner(client controlplane.Client, credentialKey string) *Provisioner {
	return &Provisioner{Client: client, CredentialKey: credentialKey}
}

// Install downloads and installs the assistant inside the sandbox.
func (p *Provisioner) Install(ctx context.Context, sandbox string) error {
	logging.Info("installing assistant", "sandbox", sandbox)

	if _, err := p.Client.Exec(ctx, sandbox, installScript); err != nil {
		return errors.ProvisionFailed("assistant install", err)
	}
	return nil
}

// PersistCredential writes the API credential into the sandbox's shell
// startup files so it survives across sessions. The credential value is
// never logged.
func (p *Provisioner) PersistCredential(ctx context.Context, sandbox, credential string) error {
	if credential == "" {
		return errors.CredentialMissing(p.CredentialKey)
	}
	logging.Info("persisting credential", "sandbox", sandbox, "key", p.CredentialKey)

	script := credentialScript(p.CredentialKey, credential)
	if _, err := p.Client.Exec(ctx, sandbox, script); err != nil {
		return errors.ProvisionFailed("credential persistence", err)
	}
	return nil
}

// VerifyCredential reads the credential back from a fresh shell. A failed
// verification is reported but is not fatal; the session export still
// covers the common case.
func (p *Provisioner) VerifyCredential(ctx context.Context, sandbox string) bool {
	out, err := p.Client.Exec(ctx, sandbox, verifyScript(p.CredentialKey))
	if err != nil {
		logging.Warn("credential verification errored", "sandbox", sandbox, "error", err)
		return false
	}
	return strings.Contains(strings.ToLower(string(out)), "verified")
}

// Launch starts the assistant in the sandbox with a TTY attached and
// blocks until it exits. A non-empty prompt runs one-shot; an empty prompt
// hands the terminal to an interactive assistant session.
func (p *Provisioner) Launch(ctx context.Context, sandbox, credential, prompt string) error {
	logging.Info("launching assistant", "sandbox", sandbox, "interactive", prompt == "")

	env := []string{fmt.Sprintf("%s=%s", p.CredentialKey, credential)}
	if err := p.Client.Session(ctx, sandbox, env, launchScript(p.CredentialKey, credential, prompt)); err != nil {
		return errors.SessionFailed(err)
	}
	return nil
}
