package grid

// ResizeGesture tracks one press-drag-release on a column's resize handle.
// Positions are in pixels. The zero value is an inactive gesture.
type ResizeGesture struct {
	key        string
	startX     int
	startWidth int
	active     bool
}

// BeginResize captures the pointer position and column width at press time.
func BeginResize(key string, startX, startWidth int) ResizeGesture {
	return ResizeGesture{key: key, startX: startX, startWidth: startWidth, active: true}
}

// Active reports whether the gesture is between press and release.
func (g ResizeGesture) Active() bool {
	return g.active
}

// Key returns the column being resized.
func (g ResizeGesture) Key() string {
	return g.key
}

// WidthAt returns the width the column should have with the pointer at x.
func (g ResizeGesture) WidthAt(x int) int {
	return max(MinColumnWidth, g.startWidth+(x-g.startX))
}

// Move applies the width for pointer position x to s. Inactive gestures do
// nothing.
func (g ResizeGesture) Move(s *State, x int) (int, error) {
	if !g.active {
		return s.Width(g.key), nil
	}
	return s.ResizeColumn(g.key, g.WidthAt(x))
}

// End finishes the gesture. Later moves are ignored.
func (g *ResizeGesture) End() {
	g.active = false
}
