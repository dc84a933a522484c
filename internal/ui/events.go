package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabgrid/internal/eventlog"
)

// eventTailLines caps how much of the event log the viewer loads.
const eventTailLines = 500

// eventsMsg carries the tail of the event log.
type eventsMsg struct {
	lines []string
	err   error
}

func loadEventsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return eventsMsg{}
		}
		lines, err := eventlog.Tail(path, eventTailLines)
		return eventsMsg{lines: lines, err: err}
	}
}

func (m *Model) initEventViewport() {
	m.eventViewport = viewport.New(max(m.width-4, 1), max(m.height-6, 1))
}

// updateEventViewport resizes the viewport and refreshes its content.
func (m *Model) updateEventViewport() {
	if !m.ready {
		return
	}
	m.eventViewport.Width = max(m.width-4, 1)
	m.eventViewport.Height = max(m.height-6, 1)

	styles := m.theme.Styles()
	var content string
	switch {
	case m.eventErr != nil:
		content = styles.DangerText.Render(fmt.Sprintf("read event log: %v", m.eventErr))
	case len(m.eventLines) == 0:
		content = styles.FaintText.Render("No events recorded yet")
	default:
		lines := make([]string, len(m.eventLines))
		for i, line := range m.eventLines {
			lines[i] = styles.Text.Render(truncate(line, m.eventViewport.Width))
		}
		content = strings.Join(lines, "\n")
	}
	m.eventViewport.SetContent(content)
}

func (m Model) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.EventLog), msg.String() == "q":
		m.showEvents = false
		return m, nil
	}

	var cmd tea.Cmd
	m.eventViewport, cmd = m.eventViewport.Update(msg)
	return m, cmd
}

func (m Model) renderEvents() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Event log")
	if m.logPath != "" {
		title += styles.FaintText.Render("  " + m.logPath)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1)

	footer := styles.Footer.Width(m.width).Render("↑/↓ scroll · esc/L/q close")

	return lipgloss.JoinVertical(lipgloss.Left,
		" "+title,
		box.Render(m.eventViewport.View()),
		footer,
	)
}
