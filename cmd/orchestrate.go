package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ambient-labs/vibectl/internal/agent"
	"github.com/ambient-labs/vibectl/internal/config"
	"github.com/ambient-labs/vibectl/internal/controlplane"
	"github.com/ambient-labs/vibectl/internal/errors"
	"github.com/ambient-labs/vibectl/internal/orchestrator"
	"github.com/ambient-labs/vibectl/internal/tui"
)

func runOrchestrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := orchestrator.Request{
		Repo:    cfg.Repo,
		Branch:  cfg.Branch,
		Machine: cfg.Machine,
	}
	if len(args) > 0 {
		req.Repo = args[0]
	}
	if len(args) > 1 {
		req.Branch = args[1]
	}
	if len(args) > 2 {
		req.Machine = args[2]
	}
	if len(args) > 3 {
		req.Prompt = args[3]
	}

	if err := config.ValidateRepo(req.Repo); err != nil {
		return errors.ValidationError(err.Error())
	}

	runID := newRunID()
	req.DisplayName = "vibectl-" + runID

	// An interrupt cancels the run context; the orchestrator still tears
	// the sandbox down on its own context.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := controlplane.NewGHClient(cfg.GHBin)
	prov := agent.NewProvisioner(client, config.CredentialKey)

	var reporter orchestrator.Reporter
	if tui.IsInteractive() && !plain && !verbose {
		reporter = tui.NewReporter()
	} else {
		reporter = orchestrator.NewPlainReporter()
	}

	o := orchestrator.New(client, prov, cfg, reporter)
	o.RunID = runID
	o.Audit = auditLogger()

	return o.Run(ctx, req)
}
