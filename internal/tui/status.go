package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusMsg replaces the current status line.
type statusMsg struct {
	text string
}

// pollMsg updates the readiness poll progress.
type pollMsg struct {
	attempt int
	max     int
	state   string
}

// stopMsg tells the model to render its final frame and quit.
type stopMsg struct{}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pollStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StatusModel is the bubbletea model for the run status line.
type StatusModel struct {
	spinner spinner.Model
	status  string
	poll    string
	done    bool
}

// NewStatusModel creates a status model with an empty status line.
func NewStatusModel() StatusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return StatusModel{spinner: s}
}

// Init starts the spinner tick loop.
func (m StatusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks and status updates.
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg.text
		m.poll = ""
		return m, nil

	case pollMsg:
		m.poll = fmt.Sprintf("(%s) [attempt %d/%d]", msg.state, msg.attempt, msg.max)
		return m, nil

	case stopMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		// Ctrl+C is handled by the run context; swallow everything else.
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the status line.
func (m StatusModel) View() string {
	if m.done || m.status == "" {
		return ""
	}
	line := m.spinner.View() + " " + statusStyle.Render(m.status)
	if m.poll != "" {
		line += " " + pollStyle.Render(m.poll)
	}
	return line
}
