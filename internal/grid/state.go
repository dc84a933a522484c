package grid

import (
	"fmt"
)

// Cell is a focus coordinate: Row indexes the filtered rows, Col indexes the
// full column list (hidden columns included).
type Cell struct {
	Row int
	Col int
}

// Direction is an arrow-key move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// State holds everything the grid renders from: the active tab, hidden
// columns, per-column widths and the focused cell. The zero value is not
// usable; build one with New.
//
// Every mutating method leaves the focused cell inside the current filtered
// view, or clears it.
type State struct {
	rows    []Row
	columns []Column
	tab     Tab

	hidden map[string]bool
	widths map[string]int

	focus   Cell
	focused bool
}

// New returns a state on the all tab with every column shown at its declared
// width and no cell focused.
func New(rows []Row, columns []Column) State {
	s := State{
		rows:    append([]Row(nil), rows...),
		columns: append([]Column(nil), columns...),
		tab:     TabAll,
		hidden:  make(map[string]bool, len(columns)),
		widths:  make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		s.widths[col.Key] = max(MinColumnWidth, col.Width)
	}
	return s
}

// Clone returns a deep copy that shares nothing mutable with s.
func (s State) Clone() State {
	dup := s
	dup.rows = append([]Row(nil), s.rows...)
	dup.columns = append([]Column(nil), s.columns...)
	dup.hidden = make(map[string]bool, len(s.hidden))
	for k, v := range s.hidden {
		dup.hidden[k] = v
	}
	dup.widths = make(map[string]int, len(s.widths))
	for k, v := range s.widths {
		dup.widths[k] = v
	}
	return dup
}

// Tab returns the active tab.
func (s State) Tab() Tab {
	return s.tab
}

// Rows returns the full dataset.
func (s State) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// FilteredRows returns the rows visible under the active tab.
func (s State) FilteredRows() []Row {
	return Filter(s.rows, s.tab)
}

// Columns returns every column definition, hidden ones included.
func (s State) Columns() []Column {
	return append([]Column(nil), s.columns...)
}

// VisibleColumns returns the columns that are not hidden, in definition order.
func (s State) VisibleColumns() []Column {
	out := make([]Column, 0, len(s.columns))
	for _, col := range s.columns {
		if !s.hidden[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// IsHidden reports whether the column is hidden.
func (s State) IsHidden(key string) bool {
	return s.hidden[key]
}

// HiddenColumns returns the hidden column keys in definition order.
func (s State) HiddenColumns() []string {
	var keys []string
	for _, col := range s.columns {
		if s.hidden[col.Key] {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// Width returns the live width of a column in pixels, or zero when the key
// is unknown.
func (s State) Width(key string) int {
	return s.widths[key]
}

// Focus returns the focused cell and whether one is focused.
func (s State) Focus() (Cell, bool) {
	return s.focus, s.focused
}

// ColumnIndex returns the position of key in the full column list, or -1.
func (s State) ColumnIndex(key string) int {
	for i, col := range s.columns {
		if col.Key == key {
			return i
		}
	}
	return -1
}

// RowIndex returns the position of the row with id in the filtered rows, or -1.
func (s State) RowIndex(id int) int {
	for i, row := range s.FilteredRows() {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// SetActiveTab switches the row filter and re-clamps focus to the new view.
func (s *State) SetActiveTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	s.tab = tab
	s.clampFocus()
	return nil
}

// ToggleColumnHidden flips whether a column is hidden and reports the new
// hidden state.
func (s *State) ToggleColumnHidden(key string) (bool, error) {
	if s.ColumnIndex(key) < 0 {
		return false, fmt.Errorf("toggle %q: %w", key, ErrUnknownColumn)
	}
	if s.hidden[key] {
		delete(s.hidden, key)
		return false, nil
	}
	s.hidden[key] = true
	return true, nil
}

// ResizeColumn sets a column's width, floored at MinColumnWidth, and returns
// the width applied.
func (s *State) ResizeColumn(key string, width int) (int, error) {
	if s.ColumnIndex(key) < 0 {
		return 0, fmt.Errorf("resize %q: %w", key, ErrUnknownColumn)
	}
	applied := max(MinColumnWidth, width)
	s.widths[key] = applied
	return applied, nil
}

// SetFocusedCell focuses (row, col) clamped into the current view. With no
// visible rows the focus is cleared instead.
func (s *State) SetFocusedCell(row, col int) {
	s.focus = Cell{Row: row, Col: col}
	s.focused = true
	s.clampFocus()
}

// FocusCell focuses the cell of the row with rowID under the column key, the
// way a click does. When either lookup fails the focus is cleared.
func (s *State) FocusCell(rowID int, key string) (Cell, error) {
	rowIdx := s.RowIndex(rowID)
	colIdx := s.ColumnIndex(key)
	if rowIdx < 0 || colIdx < 0 {
		s.ClearFocus()
		if colIdx < 0 {
			return Cell{}, fmt.Errorf("focus %q: %w", key, ErrUnknownColumn)
		}
		return Cell{}, fmt.Errorf("focus row %d: %w", rowID, ErrRowNotVisible)
	}
	s.focus = Cell{Row: rowIdx, Col: colIdx}
	s.focused = true
	return s.focus, nil
}

// ClearFocus returns to the unfocused state.
func (s *State) ClearFocus() {
	s.focus = Cell{}
	s.focused = false
}

// Move steps the focused cell one position in d, stopping at the edges. It is
// a no-op when nothing is focused. It returns the resulting focus.
func (s *State) Move(d Direction) (Cell, bool) {
	if !s.focused {
		return Cell{}, false
	}
	rowCount := len(s.FilteredRows())
	switch d {
	case Up:
		s.focus.Row = max(0, s.focus.Row-1)
	case Down:
		s.focus.Row = min(rowCount-1, s.focus.Row+1)
	case Left:
		s.focus.Col = max(0, s.focus.Col-1)
	case Right:
		s.focus.Col = min(len(s.columns)-1, s.focus.Col+1)
	}
	s.clampFocus()
	return s.Focus()
}

// FocusedRow returns the row and column under the focused cell.
func (s State) FocusedRow() (Row, Column, bool) {
	if !s.focused {
		return Row{}, Column{}, false
	}
	rows := s.FilteredRows()
	if s.focus.Row >= len(rows) || s.focus.Col >= len(s.columns) {
		return Row{}, Column{}, false
	}
	return rows[s.focus.Row], s.columns[s.focus.Col], true
}

func (s *State) clampFocus() {
	if !s.focused {
		return
	}
	rowCount := len(s.FilteredRows())
	if rowCount == 0 || len(s.columns) == 0 {
		s.ClearFocus()
		return
	}
	s.focus.Row = min(max(s.focus.Row, 0), rowCount-1)
	s.focus.Col = min(max(s.focus.Col, 0), len(s.columns)-1)
}
