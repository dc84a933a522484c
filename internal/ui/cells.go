package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidth measures text the way lipgloss draws it: East Asian ambiguous
// runes such as ● and … take one cell whatever the locale says.
var cellWidth = newCellWidth()

func newCellWidth() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}

// fitCell pads or truncates text to exactly width terminal cells, keeping a
// one-cell left margin when there is room for it.
func fitCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if width > 1 {
		text = " " + text
	}
	if cellWidth.StringWidth(text) > width {
		text = cellWidth.Truncate(text, width, "…")
	}
	return cellWidth.FillRight(text, width)
}

// truncate shortens a string to the given display width, adding an
// ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if cellWidth.StringWidth(value) <= limit {
		return value
	}
	return cellWidth.Truncate(value, limit, "…")
}
