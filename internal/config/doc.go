// Package config holds the runtime configuration for calendar updates.
//
// Configuration is loaded from an optional YAML file and normalized with
// built-in defaults, so a missing or partial file still yields a working
// setup pointing at the South Australian government sources. Pushover
// credentials are never stored in the file; they come from the environment,
// optionally seeded from a .env file.
package config
