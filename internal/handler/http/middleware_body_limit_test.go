// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitBody(t *testing.T) {
	tests := []struct {
		name          string
		maxBody       int64
		body          string
		hideLength    bool
		wantStatus    int
		wantForwarded string
	}{
		{name: "under limit", maxBody: 10, body: "12345", wantStatus: http.StatusOK, wantForwarded: "12345"},
		{name: "exactly at limit", maxBody: 5, body: "12345", wantStatus: http.StatusOK, wantForwarded: "12345"},
		{name: "declared length over limit", maxBody: 4, body: "12345", wantStatus: http.StatusRequestEntityTooLarge},
		{name: "streamed body over limit", maxBody: 4, body: "12345", hideLength: true, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "limit disabled", maxBody: 0, body: strings.Repeat("x", 1024), wantStatus: http.StatusOK, wantForwarded: strings.Repeat("x", 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, testHandlerOptions{maxBody: tt.maxBody})

			var forwarded string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				forwarded = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, RenderPath, strings.NewReader(tt.body)))
			if tt.hideLength {
				req.ContentLength = -1
			}
			rec := httptest.NewRecorder()

			h.limitBody(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantForwarded, forwarded)
			if tt.wantStatus == http.StatusRequestEntityTooLarge {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestLimitBody_ReadError(t *testing.T) {
	h := newTestHandler(t, testHandlerOptions{maxBody: 100})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, RenderPath, nil))
	req.Body = io.NopCloser(iotest.ErrReader(io.ErrUnexpectedEOF))
	req.ContentLength = -1
	rec := httptest.NewRecorder()

	h.limitBody(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
