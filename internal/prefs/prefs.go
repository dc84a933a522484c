// Package prefs persists tabgrid user preferences in
// ~/.config/tabgrid/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tabgrid/internal/config"
	"github.com/five82/tabgrid/internal/grid"
)

// Prefs holds the look and startup view of the grid.
type Prefs struct {
	Theme    string `toml:"theme"`
	StartTab string `toml:"start_tab"`
}

const (
	defaultPrefsPath = "~/.config/tabgrid/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, StartTab: string(grid.TabAll)}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Tab returns the start tab, or the all tab when the stored name is unknown.
func (p Prefs) Tab() grid.Tab {
	tab, err := grid.ParseTab(p.StartTab)
	if err != nil {
		return grid.TabAll
	}
	return tab
}

// Load reads preferences from path. Preferences are cosmetic, so any problem
// reading or parsing the file yields defaults rather than an error.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	p.StartTab = string(p.Tab())
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
