package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/tabgrid/internal/app"
	"github.com/five82/tabgrid/internal/ui"
)

var version = "0.1.0"

// runApp is swapped out in tests.
var runApp = app.Run

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "tabgrid",
		Short:         "Tabbed data grid for the terminal",
		Long:          "tabgrid shows a small data grid with row filter tabs, column visibility toggles,\nkeyboard and mouse cell focus, and drag-to-resize columns.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/tabgrid/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/tabgrid/prefs.toml)")
	flags.StringVar(&opts.LogPath, "log-file", "", "event log file (overrides log_file in the config)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	flags.BoolVar(&opts.NoMouse, "no-mouse", false, "disable mouse reporting")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the tabgrid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
