package orchestrator

import (
	"fmt"

	"github.com/ambient-labs/vibectl/internal/controlplane"
	"github.com/ambient-labs/vibectl/internal/logging"
)

// Stage identifies a point in the run pipeline.
type Stage string

const (
	StageCreating      Stage = "creating"
	StageSettling      Stage = "settling"
	StageDiscovering   Stage = "discovering"
	StageDiscovered    Stage = "discovered"
	StageAwaitingReady Stage = "awaiting-ready"
	StageReady         Stage = "ready"
	StageProvisioning  Stage = "provisioning"
	StageInSession     Stage = "in-session"
	StageTearingDown   Stage = "tearing-down"
	StageTerminated    Stage = "terminated"
)

// Reporter receives pipeline progress. Implementations own presentation;
// the orchestrator only states facts.
type Reporter interface {
	// Stage announces entry into a pipeline stage. detail is stage
	// specific: the repo for creating, the sandbox name afterwards.
	Stage(stage Stage, detail string)

	// Poll reports one readiness poll attempt.
	Poll(attempt, max int, state controlplane.State)

	// Close releases any resources (e.g. a terminal UI) before the run
	// returns or hands the terminal to an interactive session.
	Close()
}

// PlainReporter prints one status line per stage. It is the fallback when
// no terminal UI is wanted.
type PlainReporter struct{}

// NewPlainReporter creates a PlainReporter.
func NewPlainReporter() *PlainReporter {
	return &PlainReporter{}
}

// StageMessage returns the user-facing status line for a stage.
func StageMessage(stage Stage, detail string) string {
	switch stage {
	case StageCreating:
		return fmt.Sprintf("🚀 Creating sandbox for %s...", detail)
	case StageSettling:
		return "⏳ Waiting for sandbox to register..."
	case StageDiscovering:
		return "🔍 Finding sandbox..."
	case StageDiscovered:
		return fmt.Sprintf("Found sandbox: %s", detail)
	case StageAwaitingReady:
		return "⏳ Waiting for sandbox to be ready..."
	case StageReady:
		return "Sandbox is ready"
	case StageProvisioning:
		return "🔧 Provisioning assistant..."
	case StageInSession:
		return "✨ Starting session..."
	case StageTearingDown:
		return "🗑 Deleting sandbox..."
	case StageTerminated:
		return "Sandbox deleted"
	default:
		return string(stage)
	}
}

// Stage prints a status line for the stage.
func (r *PlainReporter) Stage(stage Stage, detail string) {
	msg := StageMessage(stage, detail)
	switch stage {
	case StageDiscovered, StageReady, StageTerminated:
		logging.UserSuccess("%s", msg)
	default:
		logging.UserInfo("%s", msg)
	}
}

// Poll logs readiness progress at debug level to keep the output quiet.
func (r *PlainReporter) Poll(attempt, max int, state controlplane.State) {
	logging.Debug("readiness poll", "attempt", attempt, "max", max, "state", string(state))
}

// Close is a no-op for plain output.
func (r *PlainReporter) Close() {}

// Ensure PlainReporter implements Reporter.
var _ Reporter = (*PlainReporter)(nil)
