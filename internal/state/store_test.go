package state

import (
	"errors"
	"testing"

	"github.com/five82/tabgrid/internal/grid"
)

func newStore() *Store {
	return NewStore(grid.New(grid.SampleRows(), grid.DefaultColumns()))
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := newStore()

	err := s.Update(func(g *grid.State) error {
		_, err := g.ToggleColumnHidden(grid.KeyName)
		return err
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	snap := s.Snapshot()
	if !snap.Grid.IsHidden(grid.KeyName) {
		t.Fatal("snapshot should show name hidden")
	}

	// Mutating the snapshot must not leak into the store.
	if _, err := snap.Grid.ToggleColumnHidden(grid.KeyName); err != nil {
		t.Fatalf("toggle on snapshot: %v", err)
	}
	if !s.Snapshot().Grid.IsHidden(grid.KeyName) {
		t.Fatal("Snapshot should clone the hidden set")
	}
}

func TestStore_FailedUpdateKeepsPreviousState(t *testing.T) {
	s := newStore()
	if err := s.Update(func(g *grid.State) error {
		_, err := g.ResizeColumn(grid.KeyID, 120)
		return err
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	origErr := errors.New("boom")
	err := s.Update(func(g *grid.State) error {
		if _, err := g.ResizeColumn(grid.KeyID, 400); err != nil {
			return err
		}
		return origErr
	})
	if !errors.Is(err, origErr) {
		t.Fatalf("Update error = %v, want boom", err)
	}

	snap := s.Snapshot()
	if got := snap.Grid.Width(grid.KeyID); got != 120 {
		t.Fatalf("Width = %d, want 120 (failed update must not commit)", got)
	}
}

func TestStore_FocusReadsCurrentState(t *testing.T) {
	s := newStore()
	if _, ok := s.Focus(); ok {
		t.Fatal("new store should have no focus")
	}
	_ = s.Update(func(g *grid.State) error {
		g.SetFocusedCell(1, 2)
		return nil
	})
	got, ok := s.Focus()
	if !ok || got != (grid.Cell{Row: 1, Col: 2}) {
		t.Fatalf("Focus() = %v, %v; want {1 2}, true", got, ok)
	}
}

func TestNewStore_CopiesInitialState(t *testing.T) {
	initial := grid.New(grid.SampleRows(), grid.DefaultColumns())
	s := NewStore(initial)
	if _, err := initial.ToggleColumnHidden(grid.KeyID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Snapshot().Grid.IsHidden(grid.KeyID) {
		t.Fatal("store should not share maps with the initial state")
	}
}
