package state

import (
	"sync"

	"github.com/five82/tabgrid/internal/grid"
)

// Snapshot is a point-in-time copy of the grid state handed to the renderer.
type Snapshot struct {
	Grid grid.State
}

// Store is the single owner of the grid state. The UI keeps a pointer to it,
// so handlers always read the current state instead of a copy captured when
// they were registered.
type Store struct {
	mu   sync.RWMutex
	grid grid.State
}

// NewStore wraps an initial grid state.
func NewStore(initial grid.State) *Store {
	return &Store{grid: initial.Clone()}
}

// Update runs fn against the state under the write lock. fn works on a copy
// that replaces the stored state only when fn returns nil, so a failed
// transition leaves the state untouched.
func (s *Store) Update(fn func(g *grid.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.grid.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.grid = next
	return nil
}

// Focus returns the currently focused cell.
func (s *Store) Focus() (grid.Cell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Focus()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Grid: s.grid.Clone()}
}
