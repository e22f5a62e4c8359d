// Package tui provides the terminal status display for vibectl runs.
//
// While the pipeline works through its stages (create, discover, wait,
// provision) a single spinner line shows the current stage and readiness
// poll progress. The display shuts down before the interactive session
// takes over the terminal; stages after that point print as plain lines.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - spinner component
//   - github.com/charmbracelet/lipgloss - Styling
package tui
