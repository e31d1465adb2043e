// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the MJML render API.
//
// The primary abstraction is [RenderClient]. The package ships an HTTP/REST
// implementation ([NewHTTPRenderClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401) and [errors.As] with [*CompileError] to read compiler diagnostics.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mjml-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/render_client_mock.go -package=mock

// RenderClient talks to a render API server.
type RenderClient interface {
	// Render sends doc to POST /v1/render wrapped in a JSON envelope and
	// returns the decoded response. A 500 is returned as a *CompileError that
	// also matches ErrCompileFailed.
	Render(ctx context.Context, doc string) (models.RenderResponse, error)

	// Health calls GET /healthz and returns nil on 200.
	Health(ctx context.Context) error
}
