package ui

import (
	"log"

	"github.com/five82/tabgrid/internal/grid"
)

// Actions receives the toolbar requests the grid has no behavior for. The
// grid passes a snapshot of its state and shows the error, if any.
type Actions interface {
	AddRow(g grid.State) error
	Export(g grid.State) error
}

// LogActions records Add Row and Export requests in the event log and does
// nothing else.
type LogActions struct{}

// AddRow implements Actions.
func (LogActions) AddRow(g grid.State) error {
	log.Printf("add row clicked (%d rows visible)", len(g.FilteredRows()))
	return nil
}

// Export implements Actions.
func (LogActions) Export(g grid.State) error {
	log.Printf("export clicked (%d rows, %d columns visible, hidden %v)", len(g.FilteredRows()), len(g.VisibleColumns()), g.HiddenColumns())
	return nil
}
