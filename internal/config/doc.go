// Package config defines the application's configuration structures and
// loading logic. Configuration is read from environment variables (with an
// optional .env file and config file) and validated before use, so the rest
// of the application can rely on a well-formed Config value.
package config
