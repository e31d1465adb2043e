// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"HOST":             "127.0.0.1",
		"PORT":             "8080",
		"MAX_BODY":         "512kb",
		"SHUTDOWN_TIMEOUT": "5s",

		"KEEP_COMMENTS":          "false",
		"BEAUTIFY":               "true",
		"MINIFY":                 "true",
		"VALIDATION_LEVEL":       "strict",
		"MJML_BACKEND":           "cli",
		"MJML_CLI_PATH":          "/usr/local/bin/mjml",
		"RENDER_TIMEOUT":         "2s",
		"MAX_CONCURRENT_RENDERS": "4",
		"MJML_FILE_PATH":         "/srv/templates",

		"AUTH_ENABLED":        "true",
		"AUTH_TYPE":           "basic",
		"BASIC_AUTH_USERNAME": "user",
		"BASIC_AUTH_PASSWORD": "pass",
		"AUTH_TOKEN":          "secret",

		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.FilePath)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "512kb", cfg.Server.MaxBody)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	require.NotNil(t, cfg.Render.KeepComments)
	assert.False(t, *cfg.Render.KeepComments)
	assert.True(t, cfg.Render.BeautifyOutput())
	assert.True(t, cfg.Render.MinifyOutput())
	assert.Equal(t, "strict", cfg.Render.ValidationLevel)
	assert.Equal(t, "cli", cfg.Render.Backend)
	assert.Equal(t, "/usr/local/bin/mjml", cfg.Render.CLIPath)
	assert.Equal(t, 2*time.Second, cfg.Render.Timeout)
	assert.Equal(t, 4, cfg.Render.MaxConcurrent)
	assert.Equal(t, "/srv/templates", cfg.Render.FilePath)

	assert.True(t, cfg.Auth.IsEnabled())
	assert.Equal(t, "basic", cfg.Auth.Type)
	assert.Equal(t, "user", cfg.Auth.BasicAuth.Username)
	assert.Equal(t, "pass", cfg.Auth.BasicAuth.Password)
	assert.Equal(t, "secret", cfg.Auth.Token.Secret)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_KeepCommentsUnset(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Nil(t, cfg.Render.KeepComments)
	assert.True(t, cfg.Render.PreserveComments())
	assert.Nil(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Render.Beautify)
	assert.Nil(t, cfg.Render.Minify)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"RENDER_TIMEOUT": "soon"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads so that the developer's
// shell does not leak into assertions. Empty values are treated as unset by
// caarlos0/env.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG", "HOST", "PORT", "MAX_BODY", "SHUTDOWN_TIMEOUT",
		"KEEP_COMMENTS", "BEAUTIFY", "MINIFY", "VALIDATION_LEVEL",
		"MJML_BACKEND", "MJML_CLI_PATH", "RENDER_TIMEOUT", "MAX_CONCURRENT_RENDERS",
		"AUTH_ENABLED", "AUTH_TYPE", "BASIC_AUTH_USERNAME", "BASIC_AUTH_PASSWORD",
		"AUTH_TOKEN", "LOG_LEVEL", "MJML_FILE_PATH",
	} {
		t.Setenv(k, "")
	}
}
