// Package ui is the Bubble Tea front end for the grid.
//
// The main view is a toolbar (row filter tabs, column visibility toggles,
// Add Row and Export), a boxed table with a resize handle after every
// column, a status line for the focused cell and a key help footer. The
// layout type computes screen geometry once per frame and is shared by the
// renderer and the mouse hit-tester, so clicks land on what is drawn.
//
// Column widths are kept in pixels by the grid; the UI divides them by the
// configured pixels-per-cell to get terminal columns, and multiplies the
// pointer column back when a handle is dragged.
//
// All grid mutations go through state.Store. The key and mouse handlers are
// installed once and read focus from the store on every event, so they never
// act on stale focus.
//
// Add Row and Export have no grid behavior of their own. They call the
// Actions passed in Options; LogActions only records them in the event log.
package ui
