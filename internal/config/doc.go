// Package config loads the multiplexer configuration: a TOML file,
// overlaid with VCMUX_* environment variables, with an optional
// fsnotify watch for live reload. A missing config file is not an
// error; every field has a usable default.
package config
