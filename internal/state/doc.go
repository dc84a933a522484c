// Package state shares the grid state between the event loop and anything
// else that reads it.
//
// The Store owns one grid.State. Mutations go through Update, which applies a
// transition to a private copy and commits it only on success:
//
//	err := store.Update(func(g *grid.State) error {
//		return g.SetActiveTab(grid.TabActive)
//	})
//
// A failed transition returns its error to the caller and leaves the stored
// state as it was. Snapshot returns a deep copy, maps included.
//
// Access is guarded by a sync.RWMutex, so snapshots are safe to take from any
// goroutine.
package state
