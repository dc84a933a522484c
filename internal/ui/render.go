package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabgrid/internal/grid"
	"github.com/five82/tabgrid/internal/state"
)

// renderMain renders the toolbar, the sheet, the status line and the footer.
func (m Model) renderMain() string {
	snap := m.store.Snapshot()
	lay := computeLayout(snap.Grid, m.cellPx)
	styles := m.theme.Styles()

	lines := []string{
		m.renderToolbar(snap.Grid, lay, styles),
		styles.Border.Render(strings.Repeat("─", max(m.width, 1))),
	}
	lines = append(lines, m.renderSheet(snap.Grid, lay, styles)...)
	lines = append(lines, m.renderStatus(snap, styles))
	lines = append(lines, styles.Footer.Width(m.width).Render(m.help.View(m.keys)))

	clip := lipgloss.NewStyle().MaxWidth(m.width)
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderToolbar lays the buttons out at the positions computed by layout so
// clicks land where they are drawn.
func (m Model) renderToolbar(g grid.State, lay layout, styles Styles) string {
	var b strings.Builder
	cursor := 0
	for _, btn := range lay.buttons {
		if btn.x0 > cursor {
			b.WriteString(strings.Repeat(" ", btn.x0-cursor))
		}
		b.WriteString(buttonStyle(btn.target, g, styles).Render(btn.label))
		cursor = btn.x1
	}
	return b.String()
}

func buttonStyle(target hit, g grid.State, styles Styles) lipgloss.Style {
	switch target.kind {
	case hitTab:
		if target.tab == g.Tab() {
			return styles.TabActive
		}
		return styles.TabIdle
	case hitToggle:
		if g.IsHidden(target.column) {
			return styles.ToggleHidden
		}
		return styles.Toggle
	case hitAddRow:
		return styles.AddRow
	case hitExport:
		return styles.Export
	}
	return styles.Text
}

// renderSheet draws the table box. Each column is followed by a one-cell
// separator that doubles as its resize handle in the header row; the last
// separator is the right border.
func (m Model) renderSheet(g grid.State, lay layout, styles Styles) []string {
	title := fmt.Sprintf("Sheet · %s (%d/%d)", g.Tab().Label(), len(lay.rows), len(g.Rows()))

	if len(lay.columns) == 0 {
		return []string{
			styles.Border.Render("┌─ " + title + " ─"),
			styles.Border.Render("│ ") + styles.MutedText.Render("All columns hidden. Use the toggles to show one."),
		}
	}

	border := styles.Border
	lines := make([]string, 0, len(lay.rows)+4)

	lines = append(lines, renderTopBorder(title, lay.innerWidth, border))

	// Header row with resize handles
	var header strings.Builder
	header.WriteString(border.Render("│"))
	for _, span := range lay.columns {
		header.WriteString(styles.Header.Render(fitCell(span.col.Header, span.cells)))
		handle := styles.Handle
		if m.resize.Active() && m.resize.Key() == span.col.Key {
			handle = styles.HandleActive
		}
		header.WriteString(handle.Render("┃"))
	}
	lines = append(lines, header.String())
	lines = append(lines, renderRule(lay, "├", "┼", "┤", border))

	focus, focused := g.Focus()
	if len(lay.rows) == 0 {
		lines = append(lines, border.Render("│")+styles.MutedText.Render(fitCell("No rows", lay.innerWidth-1))+border.Render("│"))
	}
	for rowIdx, row := range lay.rows {
		rowStyle := styles.Row
		if rowIdx%2 == 1 {
			rowStyle = styles.RowAlt
		}
		var line strings.Builder
		line.WriteString(border.Render("│"))
		for _, span := range lay.columns {
			cellStyle := rowStyle
			if focused && focus.Row == rowIdx && focus.Col == span.index {
				cellStyle = styles.Focus
			}
			line.WriteString(cellStyle.Render(fitCell(row.Field(span.col.Key), span.cells)))
			line.WriteString(border.Inherit(rowStyle).Render("│"))
		}
		lines = append(lines, line.String())
	}

	lines = append(lines, renderRule(lay, "└", "┴", "┘", border))
	return lines
}

// renderTopBorder draws ┌─ title ───┐ spanning innerWidth columns after the
// corner.
func renderTopBorder(title string, innerWidth int, border lipgloss.Style) string {
	fill := innerWidth - 1 // last cell is the corner
	label := " " + title + " "
	if cellWidth.StringWidth(label)+1 > fill {
		return border.Render("┌" + strings.Repeat("─", max(fill, 0)) + "┐")
	}
	rest := fill - 1 - cellWidth.StringWidth(label)
	return border.Render("┌─" + label + strings.Repeat("─", rest) + "┐")
}

func renderRule(lay layout, left, join, right string, border lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(left)
	for i, span := range lay.columns {
		b.WriteString(strings.Repeat("─", span.cells))
		if i == len(lay.columns)-1 {
			b.WriteString(right)
		} else {
			b.WriteString(join)
		}
	}
	return border.Render(b.String())
}

// renderStatus shows the last message, or what the focused cell holds.
func (m Model) renderStatus(snap state.Snapshot, styles Styles) string {
	if m.flash != "" {
		if m.flashIsErr {
			return " " + styles.DangerText.Render(m.flash)
		}
		return " " + styles.AccentText.Render(m.flash)
	}

	row, col, ok := snap.Grid.FocusedRow()
	if !ok {
		return " " + styles.FaintText.Render("No cell focused · click a cell to select it")
	}
	cell, _ := snap.Grid.Focus()
	parts := []string{
		styles.MutedText.Render(fmt.Sprintf("Row %d", cell.Row+1)),
		styles.Text.Render(col.Header),
		styles.AccentText.Render(truncate(row.Field(col.Key), 40)),
		styles.FaintText.Render(fmt.Sprintf("%dpx", snap.Grid.Width(col.Key))),
	}
	if snap.Grid.IsHidden(col.Key) {
		parts = append(parts, styles.FaintText.Render("(hidden)"))
	}
	return " " + strings.Join(parts, styles.FaintText.Render(" · "))
}
