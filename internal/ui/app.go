package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabgrid/internal/grid"
	"github.com/five82/tabgrid/internal/prefs"
	"github.com/five82/tabgrid/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Actions   Actions // nil uses LogActions
	ThemeName string
	PrefsPath string
	StartTab  grid.Tab // written back with the theme when prefs are saved
	CellPx    int      // pixels per terminal cell; zero uses 10
	LogPath   string   // event log shown by the L view
	Mouse     bool
}

const defaultCellPx = 10

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	actions   Actions
	prefsPath string
	startTab  grid.Tab
	cellPx    int
	logPath   string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Column resize drag in progress, if any
	resize grid.ResizeGesture

	// Help overlay
	showHelp bool

	// Event log view
	showEvents    bool
	eventViewport viewport.Model
	eventLines    []string
	eventErr      error

	// One-line message under the sheet, cleared by the next key press
	flash      string
	flashIsErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = state.NewStore(grid.New(grid.SampleRows(), grid.DefaultColumns()))
	}

	actions := opts.Actions
	if actions == nil {
		actions = LogActions{}
	}

	cellPx := opts.CellPx
	if cellPx <= 0 {
		cellPx = defaultCellPx
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	startTab := opts.StartTab
	if startTab == "" {
		startTab = grid.TabAll
	}

	theme := GetTheme(opts.ThemeName)

	return Model{
		store:     store,
		actions:   actions,
		prefsPath: prefsPath,
		startTab:  startTab,
		cellPx:    cellPx,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		theme:     theme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tabgrid")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.initEventViewport()
		}
		m.ready = true
		m.updateEventViewport()
		return m, nil

	case eventsMsg:
		m.eventLines = msg.lines
		m.eventErr = msg.err
		m.updateEventViewport()
		m.eventViewport.GotoBottom()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showEvents {
		return m.renderEvents()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. There is a single handler for the
// lifetime of the program; it reads focus from the shared store on every
// key rather than from state captured earlier.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showEvents {
		return m.handleEventsKey(msg)
	}

	m.flash = ""
	m.flashIsErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.EventLog):
		m.showEvents = true
		return m, loadEventsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.clearFocus()
		return m, nil

	case key.Matches(msg, m.keys.TabAll):
		m.setTab(grid.TabAll)
		return m, nil

	case key.Matches(msg, m.keys.TabActive):
		m.setTab(grid.TabActive)
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.setTab(m.store.Snapshot().Grid.Tab().Next())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.move(grid.Up)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.move(grid.Down)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.move(grid.Left)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.move(grid.Right)
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		m.resizeFocused(resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		m.resizeFocused(-resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.AddRow):
		m.runAction("Add Row", m.actions.AddRow)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.runAction("Export", m.actions.Export)
		return m, nil
	}

	for _, toggle := range m.keys.columnToggles() {
		if key.Matches(msg, toggle.binding) {
			m.toggleColumn(toggle.column)
			return m, nil
		}
	}

	return m, nil
}

// setTab switches the row filter.
func (m *Model) setTab(tab grid.Tab) {
	err := m.store.Update(func(g *grid.State) error {
		return g.SetActiveTab(tab)
	})
	if err != nil {
		m.fail("switch tab", err)
		return
	}
	log.Printf("switched to tab: %s", tab)
}

// toggleColumn hides or shows a column.
func (m *Model) toggleColumn(column string) {
	var hidden bool
	err := m.store.Update(func(g *grid.State) error {
		var err error
		hidden, err = g.ToggleColumnHidden(column)
		return err
	})
	if err != nil {
		m.fail("toggle column", err)
		return
	}
	log.Printf("toggled column %s: hidden=%t", column, hidden)
}

// move steps the focused cell. Without a focused cell arrow keys do nothing.
func (m *Model) move(d grid.Direction) {
	if _, ok := m.store.Focus(); !ok {
		return
	}
	var cell grid.Cell
	_ = m.store.Update(func(g *grid.State) error {
		cell, _ = g.Move(d)
		return nil
	})
	log.Printf("navigated %s to row %d, column %d", d, cell.Row, cell.Col)
}

// focusCell focuses the clicked cell. A failed lookup still commits, since
// it leaves the grid unfocused.
func (m *Model) focusCell(rowID int, column string) {
	var (
		cell     grid.Cell
		value    string
		focusErr error
	)
	_ = m.store.Update(func(g *grid.State) error {
		cell, focusErr = g.FocusCell(rowID, column)
		if row, _, ok := g.FocusedRow(); ok {
			value = row.Field(column)
		}
		return nil
	})
	if focusErr != nil {
		m.fail("focus cell", focusErr)
		return
	}
	log.Printf("clicked cell: row %d, column %s, value %q (focus %d,%d)", rowID, column, value, cell.Row, cell.Col)
}

func (m *Model) clearFocus() {
	if _, ok := m.store.Focus(); !ok {
		return
	}
	_ = m.store.Update(func(g *grid.State) error {
		g.ClearFocus()
		return nil
	})
	log.Printf("cleared focus")
}

// resizeFocused changes the width of the focused cell's column by delta pixels.
func (m *Model) resizeFocused(delta int) {
	var (
		column  string
		applied int
	)
	err := m.store.Update(func(g *grid.State) error {
		_, col, ok := g.FocusedRow()
		if !ok {
			return errNoFocus
		}
		column = col.Key
		var err error
		applied, err = g.ResizeColumn(col.Key, g.Width(col.Key)+delta)
		return err
	})
	if errors.Is(err, errNoFocus) {
		m.flash = "Focus a cell to resize its column"
		return
	}
	if err != nil {
		m.fail("resize column", err)
		return
	}
	log.Printf("resized column %s to %dpx", column, applied)
}

var errNoFocus = errors.New("no focused cell")

// runAction hands a snapshot to one of the extension actions.
func (m *Model) runAction(name string, action func(grid.State) error) {
	if err := action(m.store.Snapshot().Grid); err != nil {
		m.fail(name, err)
		return
	}
	m.flash = name + " requested"
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help = newHelp(m.theme)
	m.help.Width = m.width
	log.Printf("theme changed to %s", m.theme.Name)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, StartTab: string(m.startTab)}); err != nil {
		m.fail("save preferences", err)
	}
}

// fail logs err and shows it under the sheet.
func (m *Model) fail(action string, err error) {
	log.Printf("%s: %v", action, err)
	m.flash = fmt.Sprintf("%s: %v", action, err)
	m.flashIsErr = true
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	if opts.Mouse {
		// Cell motion reports drags while a button is held.
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
