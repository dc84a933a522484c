package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/five82/tabgrid/internal/config"
	"github.com/five82/tabgrid/internal/eventlog"
	"github.com/five82/tabgrid/internal/grid"
	"github.com/five82/tabgrid/internal/prefs"
	"github.com/five82/tabgrid/internal/state"
	"github.com/five82/tabgrid/internal/ui"
)

// Options configure the tabgrid application.
type Options struct {
	ConfigPath string // empty uses ~/.config/tabgrid/config.toml
	PrefsPath  string // empty uses ~/.config/tabgrid/prefs.toml
	LogPath    string // overrides log_file from the config
	Theme      string // overrides the saved theme
	NoMouse    bool
}

// Run boots the grid TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	uiOpts, err := prepare(ctx, cfg, opts)
	if err != nil {
		return err
	}

	logFile, err := eventlog.Open(uiOpts.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Printf("starting: tab=%s theme=%s cell_px=%d mouse=%t", uiOpts.StartTab, uiOpts.ThemeName, uiOpts.CellPx, uiOpts.Mouse)
	err = ui.Run(uiOpts)
	log.Printf("exiting")
	return err
}

// prepare resolves the settings and builds the store the UI runs against.
func prepare(ctx context.Context, cfg config.Config, opts Options) (ui.Options, error) {
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	theme := userPrefs.Theme
	if t := strings.TrimSpace(opts.Theme); t != "" {
		theme = t
	}

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		expanded, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return ui.Options{}, fmt.Errorf("log file: %w", err)
		}
		logPath = expanded
	}

	g := grid.New(grid.SampleRows(), grid.DefaultColumns())
	startTab := userPrefs.Tab()
	if err := g.SetActiveTab(startTab); err != nil {
		return ui.Options{}, fmt.Errorf("start tab: %w", err)
	}

	return ui.Options{
		Context:   ctx,
		Store:     state.NewStore(g),
		Actions:   ui.LogActions{},
		ThemeName: theme,
		PrefsPath: prefsPath,
		StartTab:  startTab,
		CellPx:    cfg.CellPx,
		LogPath:   logPath,
		Mouse:     cfg.Mouse && !opts.NoMouse,
	}, nil
}
