// Package config handles configuration management for iconlib.
// It layers the embedded defaults, an optional project iconlib.toml,
// ICONLIB_* environment variables and command-line flags, in that order.
package config
