package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStatusModel_StatusUpdate(t *testing.T) {
	m := NewStatusModel()

	updated, _ := m.Update(statusMsg{text: "Creating sandbox..."})
	m = updated.(StatusModel)

	if !strings.Contains(m.View(), "Creating sandbox...") {
		t.Errorf("view missing status: %q", m.View())
	}
}

func TestStatusModel_PollProgress(t *testing.T) {
	m := NewStatusModel()

	updated, _ := m.Update(statusMsg{text: "Waiting for sandbox to be ready..."})
	m = updated.(StatusModel)
	updated, _ = m.Update(pollMsg{attempt: 7, max: 60, state: "Creating"})
	m = updated.(StatusModel)

	view := m.View()
	if !strings.Contains(view, "attempt 7/60") {
		t.Errorf("view missing poll progress: %q", view)
	}
	if !strings.Contains(view, "Creating") {
		t.Errorf("view missing state: %q", view)
	}
}

func TestStatusModel_NewStatusClearsPoll(t *testing.T) {
	m := NewStatusModel()

	updated, _ := m.Update(pollMsg{attempt: 3, max: 60, state: "Creating"})
	m = updated.(StatusModel)
	updated, _ = m.Update(statusMsg{text: "Provisioning assistant..."})
	m = updated.(StatusModel)

	if strings.Contains(m.View(), "attempt") {
		t.Errorf("poll progress should reset on stage change: %q", m.View())
	}
}

func TestStatusModel_StopQuits(t *testing.T) {
	m := NewStatusModel()

	updated, cmd := m.Update(stopMsg{})
	m = updated.(StatusModel)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Errorf("stopped model should render nothing: %q", m.View())
	}
}

func TestStatusModel_CtrlCQuits(t *testing.T) {
	m := NewStatusModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit the display")
	}
}

func TestStatusModel_EmptyStatusRendersNothing(t *testing.T) {
	m := NewStatusModel()
	if m.View() != "" {
		t.Errorf("initial view should be empty: %q", m.View())
	}
}
