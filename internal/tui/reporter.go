package tui

import (
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ambient-labs/vibectl/internal/controlplane"
	"github.com/ambient-labs/vibectl/internal/logging"
	"github.com/ambient-labs/vibectl/internal/orchestrator"
)

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Reporter implements orchestrator.Reporter with a live spinner line. It
// shuts the display down when the session stage begins so the interactive
// session gets a clean terminal; stages after that print as plain lines.
type Reporter struct {
	program *tea.Program
	done    chan struct{}
	stop    sync.Once
	stopped bool
	mu      sync.Mutex
}

// NewReporter starts the status display and returns the reporter.
func NewReporter() *Reporter {
	p := tea.NewProgram(NewStatusModel(), tea.WithOutput(os.Stderr))
	r := &Reporter{program: p, done: make(chan struct{})}

	go func() {
		defer close(r.done)
		if _, err := p.Run(); err != nil {
			logging.Debug("status display exited", "error", err)
		}
	}()
	return r
}

// Stage updates the status line, or prints plainly once the display is
// released.
func (r *Reporter) Stage(stage orchestrator.Stage, detail string) {
	msg := orchestrator.StageMessage(stage, detail)

	if stage == orchestrator.StageInSession {
		r.release()
	}

	r.mu.Lock()
	stopped := r.stopped
	r.mu.Unlock()

	if stopped {
		switch stage {
		case orchestrator.StageDiscovered, orchestrator.StageReady, orchestrator.StageTerminated:
			logging.UserSuccess("%s", msg)
		default:
			logging.UserInfo("%s", msg)
		}
		return
	}
	r.program.Send(statusMsg{text: msg})
}

// Poll updates the readiness progress on the status line.
func (r *Reporter) Poll(attempt, max int, state controlplane.State) {
	r.mu.Lock()
	stopped := r.stopped
	r.mu.Unlock()
	if stopped {
		return
	}
	r.program.Send(pollMsg{attempt: attempt, max: max, state: string(state)})
}

// Close shuts the status display down. Safe to call more than once.
func (r *Reporter) Close() {
	r.release()
}

func (r *Reporter) release() {
	r.stop.Do(func() {
		r.program.Send(stopMsg{})
		<-r.done
		r.mu.Lock()
		r.stopped = true
		r.mu.Unlock()
	})
}

// Ensure Reporter implements orchestrator.Reporter.
var _ orchestrator.Reporter = (*Reporter)(nil)
