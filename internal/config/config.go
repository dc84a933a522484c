package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings of the grid.
type Config struct {
	// CellPx is how many pixels one terminal cell stands for. Column widths
	// are kept in pixels and divided by CellPx for display.
	CellPx  int
	LogFile string
	Mouse   bool
}

const (
	defaultConfigPath = "~/.config/tabgrid/config.toml"
	defaultLogFile    = "~/.local/state/tabgrid/events.log"
	defaultCellPx     = 10
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		CellPx:  defaultCellPx,
		LogFile: mustExpand(defaultLogFile),
		Mouse:   true,
	}
}

// Load reads the config at path (or the default location), falling back to
// defaults for a missing file or empty values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CellPx  int    `toml:"cell_px"`
		LogFile string `toml:"log_file"`
		Mouse   *bool  `toml:"mouse"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.CellPx > 0 {
		cfg.CellPx = raw.CellPx
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.Mouse != nil {
		cfg.Mouse = *raw.Mouse
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and makes the path
// absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
