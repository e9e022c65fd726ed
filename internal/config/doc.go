// Package config loads and merges revmon configuration from defaults, the
// JSON config file, REVMON_* environment variables, and CLI flag overrides,
// in that order of precedence.
package config
