package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/tabgrid/internal/grid"
)

// keyMap defines all keyboard bindings for the grid.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	EventLog   key.Binding
	Escape     key.Binding

	// Tabs
	TabAll    key.Binding
	TabActive key.Binding
	NextTab   key.Binding

	// Column visibility
	ToggleID    key.Binding
	ToggleName  key.Binding
	ToggleValue key.Binding

	// Focus navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Resize focused column
	Grow   key.Binding
	Shrink key.Binding

	// Toolbar actions
	AddRow key.Binding
	Export key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		EventLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Event log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear focus"),
		),

		// Tabs
		TabAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "All rows"),
		),
		TabActive: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Active rows"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),

		// Column visibility
		ToggleID: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Toggle ID"),
		),
		ToggleName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Toggle Name"),
		),
		ToggleValue: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Toggle Value"),
		),

		// Focus navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Right"),
		),

		// Resize
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Widen column"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Narrow column"),
		),

		// Toolbar actions
		AddRow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add row"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Left, k.Right, k.Escape},
		// Rows and columns
		{k.TabAll, k.TabActive, k.NextTab, k.ToggleID, k.ToggleName, k.ToggleValue},
		// Resize and actions
		{k.Grow, k.Shrink, k.AddRow, k.Export},
		// General
		{k.EventLog, k.CycleTheme, k.Help, k.Quit},
	}
}

// columnToggle pairs a toggle binding with the column it hides or shows.
type columnToggle struct {
	binding key.Binding
	column  string
}

func (k keyMap) columnToggles() []columnToggle {
	return []columnToggle{
		{k.ToggleID, grid.KeyID},
		{k.ToggleName, grid.KeyName},
		{k.ToggleValue, grid.KeyValue},
	}
}
