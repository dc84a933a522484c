package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabgrid/internal/grid"
)

// handleMouse routes clicks to the element under the pointer and drives
// column resize drags.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showEvents {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.resize.Active() {
			// The release was lost, e.g. outside the window.
			column := m.resize.Key()
			m.resize.End()
			log.Printf("resize ended without release: column %s", column)
		}
		m.flash = ""
		m.flashIsErr = false
		m.click(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.resize.Active() {
			m.drag(msg.X)
		}

	case tea.MouseActionRelease:
		if !m.resize.Active() {
			return m, nil
		}
		width := m.drag(msg.X)
		column := m.resize.Key()
		m.resize.End()
		log.Printf("resized column %s to %dpx", column, width)
	}

	return m, nil
}

func (m *Model) click(x, y int) {
	snap := m.store.Snapshot()
	target := computeLayout(snap.Grid, m.cellPx).hitTest(x, y)

	switch target.kind {
	case hitTab:
		m.setTab(target.tab)
	case hitToggle:
		m.toggleColumn(target.column)
	case hitAddRow:
		m.runAction("Add Row", m.actions.AddRow)
	case hitExport:
		m.runAction("Export", m.actions.Export)
	case hitCell:
		m.focusCell(target.rowID, target.column)
	case hitHandle:
		m.resize = grid.BeginResize(target.column, m.pointerPx(x), snap.Grid.Width(target.column))
		log.Printf("resize started: column %s at %dpx", target.column, snap.Grid.Width(target.column))
	}
}

// drag applies the width under the pointer to the column being resized and
// returns it.
func (m *Model) drag(x int) int {
	var width int
	err := m.store.Update(func(g *grid.State) error {
		var err error
		width, err = m.resize.Move(g, m.pointerPx(x))
		return err
	})
	if err != nil {
		m.resize.End()
		m.fail("resize column", err)
	}
	return width
}

// pointerPx converts a terminal column to a horizontal pixel position.
func (m Model) pointerPx(x int) int {
	return x * m.cellPx
}
