// Package grid holds the data model and state transitions of the tabgrid
// sheet.
//
// # Overview
//
// The sheet is a fixed dataset of rows shown through a set of columns. What
// the user sees is derived from a single State value:
//
//   - the active Tab, which filters rows by status (Filter)
//   - the hidden-columns set, toggled per column key
//   - a width map, one entry per column, changed only by ResizeColumn
//   - an optional focused Cell, moved by arrow keys (Move)
//
// # Focus invariant
//
// A focused cell always points inside the current view: its Row indexes
// FilteredRows and its Col indexes the full column list. Transitions that can
// shrink the view (SetActiveTab) re-clamp the focus, and a view with no rows
// clears it. FocusCell resolves a clicked row by identity, so a row that is
// no longer visible clears the focus and reports ErrRowNotVisible.
//
// # Resizing
//
// ResizeGesture models a press-drag-release on a column handle. The width is
// recomputed from the press position on every move and applied immediately:
//
//	width = max(MinColumnWidth, startWidth + (x - startX))
//
// # Concurrency
//
// State is a plain value with no locking. internal/state.Store wraps it for
// sharing.
package grid
