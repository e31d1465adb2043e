package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 70000 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unparsable max body",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxBody = "lots" },
			wantErr: ErrInvalidMaxBody,
		},
		{
			name:    "zero max body",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxBody = "0b" },
			wantErr: ErrInvalidMaxBody,
		},
		{
			name:    "unknown validation level",
			mutate:  func(cfg *StructuredConfig) { cfg.Render.ValidationLevel = "lenient" },
			wantErr: ErrInvalidRenderConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Render.Backend = "wasm" },
			wantErr: ErrInvalidRenderConfigs,
		},
		{
			name: "cli backend without path",
			mutate: func(cfg *StructuredConfig) {
				cfg.Render.Backend = "cli"
				cfg.Render.CLIPath = ""
			},
			wantErr: ErrInvalidRenderConfigs,
		},
		{
			name:   "zero concurrency means gomaxprocs",
			mutate: func(cfg *StructuredConfig) { cfg.Render.MaxConcurrent = 0 },
		},
		{
			name:    "negative concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Render.MaxConcurrent = -1 },
			wantErr: ErrInvalidRenderConfigs,
		},
		{
			name:    "unknown auth type",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.Type = "oauth" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name: "basic auth without credentials is still valid",
			mutate: func(cfg *StructuredConfig) {
				cfg.Auth.Enabled = Bool(true)
				cfg.Auth.Type = "basic"
			},
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "verbose" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestServer_AddressAndMaxBody(t *testing.T) {
	s := Server{Host: "0.0.0.0", Port: 80, MaxBody: "1mb"}
	assert.Equal(t, "0.0.0.0:80", s.Address())
	assert.Equal(t, int64(1024*1024), s.MaxBodyBytes())

	s.MaxBody = "10b"
	assert.Equal(t, int64(10), s.MaxBodyBytes())

	s.MaxBody = ""
	assert.Zero(t, s.MaxBodyBytes())
}

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := *Defaults()
	cfg.Auth.BasicAuth = BasicAuth{Username: "user", Password: "pass"}
	cfg.Auth.Token.Secret = "secret"

	redacted := cfg.Redacted()

	assert.Equal(t, "user", redacted.Auth.BasicAuth.Username)
	assert.NotEqual(t, "pass", redacted.Auth.BasicAuth.Password)
	assert.NotEqual(t, "secret", redacted.Auth.Token.Secret)
	assert.Equal(t, "pass", cfg.Auth.BasicAuth.Password, "original must stay untouched")
}
