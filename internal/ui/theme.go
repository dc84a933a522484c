package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette for the grid.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Toolbar and footer
	RowBg      string // Even body rows
	RowAltBg   string // Odd body rows (striping)
	HeaderBg   string // Column header row

	// Borders and resize handles
	Border      string
	BorderFocus string // Handle being dragged

	// Focused cell
	FocusBg   string
	FocusText string

	// Tabs
	TabActiveBg   string
	TabActiveText string
	TabIdleBg     string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string // Add Row
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	button := lipgloss.NewStyle().Padding(0, 1)

	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		TabActive: button.
			Background(lipgloss.Color(t.TabActiveBg)).
			Foreground(lipgloss.Color(t.TabActiveText)).
			Bold(true),

		TabIdle: button.
			Background(lipgloss.Color(t.TabIdleBg)).
			Foreground(lipgloss.Color(t.Muted)),

		Toggle: button.
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.Text)),

		ToggleHidden: button.
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.Faint)),

		AddRow: button.
			Background(lipgloss.Color(t.Success)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true),

		Export: button.
			Background(lipgloss.Color(t.Faint)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Row: lipgloss.NewStyle().
			Background(lipgloss.Color(t.RowBg)).
			Foreground(lipgloss.Color(t.Text)),

		RowAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.RowAltBg)).
			Foreground(lipgloss.Color(t.Text)),

		Focus: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.FocusText)).
			Bold(true),

		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Handle: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.Faint)),

		HandleActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.BorderFocus)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	// Toolbar buttons
	TabActive    lipgloss.Style
	TabIdle      lipgloss.Style
	Toggle       lipgloss.Style
	ToggleHidden lipgloss.Style
	AddRow       lipgloss.Style
	Export       lipgloss.Style

	// Table
	Header       lipgloss.Style
	Row          lipgloss.Style
	RowAlt       lipgloss.Style
	Focus        lipgloss.Style
	Border       lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style

	Footer lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		RowBg:      "#192330", // bg1
		RowAltBg:   "#212e3f", // bg2
		HeaderBg:   "#29394f", // bg3

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		FocusBg:   "#dbc074", // yellow
		FocusText: "#131a24", // bg0

		TabActiveBg:   "#719cd6", // blue
		TabActiveText: "#131a24", // bg0
		TabIdleBg:     "#212e3f", // bg2

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		RowBg:      "#1F1F28", // sumiInk3
		RowAltBg:   "#2A2A37", // sumiInk4
		HeaderBg:   "#363646", // sumiInk5

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		FocusBg:   "#E6C384", // carpYellow
		FocusText: "#16161D", // sumiInk0

		TabActiveBg:   "#7E9CD8", // crystalBlue
		TabActiveText: "#16161D", // sumiInk0
		TabIdleBg:     "#2A2A37", // sumiInk4

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		RowBg:      "#0f172a", // slate-900
		RowAltBg:   "#1e293b", // slate-800
		HeaderBg:   "#283548", // between slate-800 and slate-700

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		FocusBg:   "#fde68a", // amber-200
		FocusText: "#0f172a", // slate-900

		TabActiveBg:   "#2563eb", // blue-600
		TabActiveText: "#f8fafc", // slate-50
		TabIdleBg:     "#1e293b", // slate-800

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#16a34a", // green-600
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
