// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

// StructuredConfig is the top-level configuration container for the
// go-mjml-api server. It aggregates all sub-configurations and is populated
// by merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Environment variable names are kept flat (HOST, PORT, AUTH_TOKEN, ...) so
// that deployments of the previous render API keep working unchanged.
type StructuredConfig struct {
	// Server holds listener and transport limits.
	Server Server

	// Render holds the options passed to the MJML compiler on every request.
	Render Render

	// Auth holds the authentication gate settings.
	Auth Auth

	// Log holds logger settings.
	Log Log

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// Server holds network and limit settings for the inbound HTTP transport.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// MaxBody is the largest accepted request body as a human readable size
	// ("1mb", "512kb", "10b"). Units are binary: 1mb = 1024*1024 bytes.
	// Env: MAX_BODY
	MaxBody string `env:"MAX_BODY"`

	// ShutdownTimeout bounds how long in-flight requests may run once a stop
	// signal is received.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Render holds the compiler options applied to every render request.
type Render struct {
	// KeepComments keeps HTML comments in the compiled output. A nil value
	// means "not configured" and resolves to true.
	// Env: KEEP_COMMENTS
	KeepComments *bool `env:"KEEP_COMMENTS"`

	// Beautify is accepted for compatibility only; MJML 4 ignores it.
	// Nil means "not configured" and resolves to false.
	// Env: BEAUTIFY
	Beautify *bool `env:"BEAUTIFY"`

	// Minify is accepted for compatibility only; MJML 4 ignores it.
	// Nil means "not configured" and resolves to false.
	// Env: MINIFY
	Minify *bool `env:"MINIFY"`

	// FilePath is the document location reported in diagnostics. Relative
	// paths are resolved against the working directory.
	// Env: MJML_FILE_PATH
	FilePath string `env:"MJML_FILE_PATH"`

	// ValidationLevel is one of "strict", "soft" or "skip".
	// Env: VALIDATION_LEVEL
	ValidationLevel string `env:"VALIDATION_LEVEL"`

	// Backend selects the compiler implementation: "native" or "cli".
	// Env: MJML_BACKEND
	Backend string `env:"MJML_BACKEND"`

	// CLIPath is the mjml executable used by the "cli" backend.
	// Env: MJML_CLI_PATH
	CLIPath string `env:"MJML_CLI_PATH"`

	// Timeout bounds the compile time of a single request.
	// Env: RENDER_TIMEOUT
	Timeout time.Duration `env:"RENDER_TIMEOUT"`

	// MaxConcurrent bounds the number of compilations running at once. Zero
	// means GOMAXPROCS at the time the render service is built.
	// Env: MAX_CONCURRENT_RENDERS
	MaxConcurrent int `env:"MAX_CONCURRENT_RENDERS"`
}

// Auth configures the authentication gate in front of the render endpoint.
type Auth struct {
	// Enabled switches the gate on. When false or nil every request is
	// admitted.
	// Env: AUTH_ENABLED
	Enabled *bool `env:"AUTH_ENABLED"`

	// Type is one of "none", "basic" or "token".
	// Env: AUTH_TYPE
	Type string `env:"AUTH_TYPE"`

	// BasicAuth holds the credentials checked in "basic" mode.
	BasicAuth BasicAuth

	// Token holds the shared secret checked in "token" mode.
	Token Token
}

// BasicAuth is the username/password pair for HTTP Basic authentication.
type BasicAuth struct {
	// Env: BASIC_AUTH_USERNAME
	Username string `env:"BASIC_AUTH_USERNAME"`
	// Env: BASIC_AUTH_PASSWORD
	Password string `env:"BASIC_AUTH_PASSWORD"`
}

// Token is the shared secret for token authentication.
type Token struct {
	// Env: AUTH_TOKEN
	Secret string `env:"AUTH_TOKEN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Address returns the listen address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MaxBodyBytes returns MaxBody in bytes. It returns 0 when MaxBody is empty
// or malformed; validate rejects both before a config reaches callers.
func (s Server) MaxBodyBytes() int64 {
	if s.MaxBody == "" {
		return 0
	}
	n, err := units.RAMInBytes(s.MaxBody)
	if err != nil {
		return 0
	}
	return n
}

// PreserveComments resolves KeepComments, defaulting to true.
func (r Render) PreserveComments() bool {
	if r.KeepComments == nil {
		return true
	}
	return *r.KeepComments
}

// BeautifyOutput resolves Beautify, defaulting to false.
func (r Render) BeautifyOutput() bool {
	return r.Beautify != nil && *r.Beautify
}

// MinifyOutput resolves Minify, defaulting to false.
func (r Render) MinifyOutput() bool {
	return r.Minify != nil && *r.Minify
}

// IsEnabled resolves Enabled, defaulting to false.
func (a Auth) IsEnabled() bool {
	return a.Enabled != nil && *a.Enabled
}

// Bool returns a pointer to v, for the tri-state fields above.
func Bool(v bool) *bool {
	return &v
}

// Redacted returns a copy of cfg that is safe to log: credentials are masked.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const mask = "********"
	if cfg.Auth.BasicAuth.Password != "" {
		cfg.Auth.BasicAuth.Password = mask
	}
	if cfg.Auth.Token.Secret != "" {
		cfg.Auth.Token.Secret = mask
	}
	return cfg
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Later sources override non-zero fields of
// earlier ones; for the tri-state booleans an explicit false also wins:
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags (args excludes the program name)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
