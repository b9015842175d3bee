// Package config defines the editing core's tunable settings and loads
// them from TOML files. Settings are plain structs with defaults;
// loading a file overlays values onto the defaults, and Validate
// rejects configurations the engine cannot honor.
//
// A Watcher can monitor the loaded file and deliver re-parsed
// configurations on change, debounced so editors saving through
// rename-and-replace produce a single reload.
package config
