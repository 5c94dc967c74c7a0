// Package config loads tenantgate configuration from a YAML file and
// the environment. Environment variables override file values, which
// override defaults; each attribute remembers where its value came
// from so the CLI can report it.
package config
