// Package config loads the editor configuration.
//
// Configuration lives in a single TOML file:
//
//	[editor]
//	line_break = "\n"     # "\n", "\r", "\r\n" or lf, cr, crlf
//	read_only  = false
//
//	[history]
//	max_entries = 1000
//
//	[clipboard]
//	system_sync = false   # mirror the clipboard top to the OS clipboard
//
//	[log]
//	level = "info"        # debug, info, warn, error
//	file  = ""            # empty means stderr
//
// Missing keys keep their defaults and a missing file yields Default().
// Unknown keys are rejected so typos do not go unnoticed.
//
// # Live Reload
//
// Watch monitors the file with fsnotify and hands every successfully
// reloaded Config to a callback:
//
//	w, err := config.Watch(path, func(cfg *config.Config) {
//	    logger.SetLevel(...)
//	})
//	defer w.Close()
package config
