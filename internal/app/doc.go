// Package app is the composition root for tabgrid.
//
// Run loads the config, points the standard logger at the event log file,
// applies the saved preferences (theme and start tab), seeds a state.Store
// with the sample rows and default columns, and blocks in the UI until the
// user quits or the context is cancelled.
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Event log file cannot be created
//
// Preferences never fail startup; a missing or broken prefs file yields the
// defaults.
//
// Command line flags override config and preferences:
//
//	opts := app.Options{
//		ConfigPath: "",      // default ~/.config/tabgrid/config.toml
//		Theme:      "Slate", // overrides prefs.toml
//		NoMouse:    true,
//	}
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatal(err)
//	}
package app
