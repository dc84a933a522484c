package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp builds a help model styled for the theme.
func newHelp(t Theme) help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))

	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	return h
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	full := m.help
	full.ShowAll = true
	full.Width = 0
	b.WriteString(full.View(m.keys))

	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Mouse: click tabs, toggles and cells;"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("drag a ┃ handle to resize a column."))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
