package ui

import (
	"github.com/five82/tabgrid/internal/grid"
)

// Screen rows of the main view.
const (
	toolbarY = 0
	ruleY    = 1
	boxTopY  = 2
	headerY  = 3
	bodyY    = 5 // header separator sits on row 4

	// tableLeftX is the first column inside the left border.
	tableLeftX = 1

	// toolbarGap separates the tab, toggle and action button groups.
	toolbarGap = 3

	// resizeStep is the keyboard resize increment in pixels.
	resizeStep = 10
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTab
	hitToggle
	hitAddRow
	hitExport
	hitHandle
	hitCell
)

// hit is what lies under a screen position.
type hit struct {
	kind   hitKind
	tab    grid.Tab
	column string
	rowID  int
}

// button is a clickable toolbar label spanning [x0, x1) on the toolbar row.
type button struct {
	label  string
	x0, x1 int
	target hit
}

// columnSpan places one visible column: content cells [x0, x0+cells) and
// the resize handle at handle.
type columnSpan struct {
	col    grid.Column
	index  int // position in the full column list
	x0     int
	cells  int
	handle int
}

// layout is the geometry of the main view for one grid state. Rendering and
// mouse hit-testing both derive from it.
type layout struct {
	buttons    []button
	columns    []columnSpan
	rows       []grid.Row
	innerWidth int // columns plus their handles
}

func computeLayout(g grid.State, cellPx int) layout {
	var lay layout

	x := 1
	place := func(label string, target hit) {
		w := cellWidth.StringWidth(label) + 2 // button padding
		lay.buttons = append(lay.buttons, button{label: label, x0: x, x1: x + w, target: target})
		x += w + 1
	}

	for _, tab := range grid.Tabs() {
		place(tab.Label(), hit{kind: hitTab, tab: tab})
	}
	x += toolbarGap - 1
	for _, col := range g.Columns() {
		place(toggleLabel(col, g.IsHidden(col.Key)), hit{kind: hitToggle, column: col.Key})
	}
	x += toolbarGap - 1
	place("Add Row", hit{kind: hitAddRow})
	place("Export", hit{kind: hitExport})

	x = tableLeftX
	for _, col := range g.VisibleColumns() {
		cells := cellsFor(g.Width(col.Key), cellPx)
		lay.columns = append(lay.columns, columnSpan{
			col:    col,
			index:  g.ColumnIndex(col.Key),
			x0:     x,
			cells:  cells,
			handle: x + cells,
		})
		x += cells + 1
	}
	lay.innerWidth = x - tableLeftX
	lay.rows = g.FilteredRows()
	return lay
}

// hitTest resolves a screen position to the element under it.
func (l layout) hitTest(x, y int) hit {
	switch {
	case y == toolbarY:
		for _, b := range l.buttons {
			if x >= b.x0 && x < b.x1 {
				return b.target
			}
		}
	case y == headerY:
		for _, span := range l.columns {
			if x == span.handle {
				return hit{kind: hitHandle, column: span.col.Key}
			}
		}
	case y >= bodyY && y-bodyY < len(l.rows):
		row := l.rows[y-bodyY]
		for _, span := range l.columns {
			if x >= span.x0 && x < span.handle {
				return hit{kind: hitCell, column: span.col.Key, rowID: row.ID}
			}
		}
	}
	return hit{kind: hitNone}
}

// cellsFor converts a pixel width to terminal cells.
func cellsFor(px, cellPx int) int {
	if cellPx <= 0 {
		cellPx = 1
	}
	return max(1, px/cellPx)
}

func toggleLabel(col grid.Column, hidden bool) string {
	if hidden {
		return "○ " + col.Header
	}
	return "● " + col.Header
}
