// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// defaultDotEnvPath is the .env file looked up in the working directory.
const defaultDotEnvPath = ".env"

// StructuredConfig is the top-level configuration container for the
// be-api application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// Server holds the listening address, limits and timeouts of the HTTP
	// server.
	Server Server

	// Log holds logging settings.
	Log Log

	// Probe holds settings of the liveness probe CLI.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network, limit and timeout settings for the inbound
// transport layer.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to bind. Must be within 1..65535.
	// Env: PORT
	Port int `env:"PORT" envDefault:"8080"`

	// ReadHeaderTimeout bounds how long the server waits for request
	// headers (e.g. "5s").
	// Env: READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// MaxBodyBytes is the largest JSON request body accepted, in bytes.
	// Env: MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"102400"`
}

// Address returns the host:port pair to listen on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum severity emitted: trace, debug, info, warn,
	// error or fatal.
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Probe holds settings of the liveness probe CLI.
type Probe struct {
	// URL is the base URL of the service to probe. When empty the probe
	// targets 127.0.0.1 on the configured server port.
	// Env: PROBE_URL
	URL string `env:"URL"`

	// Timeout bounds every probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" envDefault:"3s"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables (with .env loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
