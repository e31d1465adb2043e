// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpRenderClient pointed at the test server.
func newTestClient(t *testing.T, cfg Config) *httpRenderClient {
	t.Helper()

	c, err := NewHTTPRenderClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpRenderClient)
}

func TestNewHTTPRenderClient_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantURL string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080/", wantURL: "http://localhost:8080"},
		{name: "scheme added", address: "localhost:8080", wantURL: "http://localhost:8080"},
		{name: "https kept", address: " https://render.example.com ", wantURL: "https://render.example.com"},
		{name: "empty", address: "", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHTTPRenderClient(Config{Address: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, c.(*httpRenderClient).client.BaseURL)
		})
	}
}

func TestRender_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/render", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.RenderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "<mjml></mjml>", req.MJML)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"html":"<!doctype html>","mjml":"<mjml></mjml>","mjml_version":"4.15.3","errors":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{Address: srv.URL})
	got, err := c.Render(context.Background(), "<mjml></mjml>")

	require.NoError(t, err)
	assert.Equal(t, "<!doctype html>", got.HTML)
	assert.Equal(t, "4.15.3", got.MJMLVersion)
	assert.Empty(t, got.Errors)
}

func TestRender_Credentials(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		check func(t *testing.T, r *http.Request)
	}{
		{
			name: "token header",
			cfg:  Config{Token: "s3cr3t", Username: "ignored", Password: "ignored"},
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "s3cr3t", r.Header.Get("X-Authentication-Token"))
				_, _, ok := r.BasicAuth()
				assert.False(t, ok)
			},
		},
		{
			name: "basic auth",
			cfg:  Config{Username: "user", Password: "pass"},
			check: func(t *testing.T, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				require.True(t, ok)
				assert.Equal(t, "user", user)
				assert.Equal(t, "pass", pass)
			},
		},
		{
			name: "anonymous",
			check: func(t *testing.T, r *http.Request) {
				assert.Empty(t, r.Header.Get("X-Authentication-Token"))
				assert.Empty(t, r.Header.Get("Authorization"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.check(t, r)
				_, _ = w.Write([]byte(`{"errors":[]}`))
			}))
			defer srv.Close()

			cfg := tt.cfg
			cfg.Address = srv.URL
			_, err := newTestClient(t, cfg).Render(context.Background(), "<mjml></mjml>")
			require.NoError(t, err)
		})
	}
}

func TestRender_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"You're probably looking for /v1/render"}`, wantErr: ErrNotFound},
		{name: "compile failed", status: http.StatusInternalServerError, body: `{"message":"Failed to compile mjml"}`, wantErr: ErrCompileFailed},
		{name: "busy", status: http.StatusServiceUnavailable, body: `{"message":"Failed to compile mjml"}`, wantErr: ErrServerBusy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, Config{Address: srv.URL}).Render(context.Background(), "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRender_CompileErrorCarriesDiagnostics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Failed to compile mjml","errors":[{"line":2,"message":"Attribute foo is illegal","tagName":"mj-text","formattedMessage":"Line 2 (mj-text) — Attribute foo is illegal"}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, Config{Address: srv.URL}).Render(context.Background(), "x")

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "Failed to compile mjml", compileErr.Message)
	require.Len(t, compileErr.Errors, 1)
	assert.Equal(t, 2, compileErr.Errors[0].Line)
	assert.Equal(t, "mj-text", compileErr.Errors[0].TagName)
}

func TestRender_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(t, Config{Address: srv.URL}).Render(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unhealthy", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/healthz", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestClient(t, Config{Address: srv.URL}).Health(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
