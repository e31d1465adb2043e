// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ParseFlags parses command-line configuration flags from args (without the
// program name). Unset flags leave their fields at the zero value so that
// merging does not clobber lower-priority sources.
//
// Credentials are deliberately not accepted as flags: they would leak into
// process listings. Use the environment or a config file instead.
//
// Flags:
//
//	--host              listen host
//	--port              listen port
//	--max-body          maximum request body size (e.g. "1mb")
//	--shutdown-timeout  graceful shutdown bound (e.g. "15s")
//	--keep-comments     keep HTML comments in output
//	--beautify          deprecated, no effect
//	--minify            deprecated, no effect
//	--file-path         document path reported in diagnostics
//	--validation-level  strict, soft or skip
//	--backend           native or cli
//	--mjml-cli          mjml executable for the cli backend
//	--render-timeout    per-request compile bound (e.g. "10s")
//	--max-renders       concurrent compilations
//	--auth-enabled      enable the authentication gate
//	--auth-type         none, basic or token
//	--log-level         zerolog level
//	-c/--config         JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("go-mjml-api", pflag.ContinueOnError)

	var (
		host            string
		port            int
		maxBody         string
		shutdownTimeout time.Duration
		keepComments    bool
		beautify        bool
		minify          bool
		filePath        string
		validationLevel string
		backend         string
		cliPath         string
		renderTimeout   time.Duration
		maxRenders      int
		authEnabled     bool
		authType        string
		logLevel        string
		configPath      string
	)

	fs.StringVar(&host, "host", "", "Listen host")
	fs.IntVar(&port, "port", 0, "Listen port")
	fs.StringVar(&maxBody, "max-body", "", "Maximum request body size (e.g. 1mb)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g. 15s)")
	fs.BoolVar(&keepComments, "keep-comments", true, "Keep HTML comments in compiled output")
	fs.BoolVar(&beautify, "beautify", false, "Deprecated: has no effect")
	fs.BoolVar(&minify, "minify", false, "Deprecated: has no effect")
	fs.StringVar(&filePath, "file-path", "", "Document path reported in diagnostics")
	fs.StringVar(&validationLevel, "validation-level", "", "Validation level: strict, soft or skip")
	fs.StringVar(&backend, "backend", "", "Compiler backend: native or cli")
	fs.StringVar(&cliPath, "mjml-cli", "", "mjml executable used by the cli backend")
	fs.DurationVar(&renderTimeout, "render-timeout", 0, "Per-request compile timeout (e.g. 10s)")
	fs.IntVar(&maxRenders, "max-renders", 0, "Maximum concurrent compilations")
	fs.BoolVar(&authEnabled, "auth-enabled", false, "Enable authentication")
	fs.StringVar(&authType, "auth-type", "", "Authentication type: none, basic or token")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVarP(&configPath, "config", "c", "", "JSON or YAML config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Host:            host,
			Port:            port,
			MaxBody:         maxBody,
			ShutdownTimeout: shutdownTimeout,
		},
		Render: Render{
			FilePath:        filePath,
			ValidationLevel: validationLevel,
			Backend:         backend,
			CLIPath:         cliPath,
			Timeout:         renderTimeout,
			MaxConcurrent:   maxRenders,
		},
		Auth: Auth{
			Type: authType,
		},
		Log: Log{
			Level: logLevel,
		},
		FilePath: configPath,
	}

	// booleans are only set when given, so an explicit false can still
	// override a lower layer
	if fs.Changed("keep-comments") {
		cfg.Render.KeepComments = &keepComments
	}
	if fs.Changed("beautify") {
		cfg.Render.Beautify = &beautify
	}
	if fs.Changed("minify") {
		cfg.Render.Minify = &minify
	}
	if fs.Changed("auth-enabled") {
		cfg.Auth.Enabled = &authEnabled
	}

	return cfg, nil
}
