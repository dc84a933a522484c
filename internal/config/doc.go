// Package config loads tabgrid's TOML settings.
//
// The file lives at ~/.config/tabgrid/config.toml unless a path is given:
//
//	cell_px  = 10                                 # pixels per terminal cell
//	log_file = "~/.local/state/tabgrid/events.log" # interaction log
//	mouse    = true                               # click and drag support
//
// A missing file yields Default(). Zero or blank values keep their defaults.
// Malformed TOML is an error, since silently ignoring it would hide typos.
package config
