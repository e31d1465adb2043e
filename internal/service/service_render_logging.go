// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/rs/zerolog"
)

type renderLoggingService struct {
	inner  RenderService
	logger *logger.Logger
}

// NewRenderLoggingService returns a wrapper that logs every failed render at
// error level and successful ones at debug level. The request-scoped logger
// from ctx is preferred; fallback is used when ctx carries none.
func NewRenderLoggingService(fallback *logger.Logger) RenderServiceWrapper {
	return &renderLoggingService{logger: fallback}
}

func (s *renderLoggingService) Wrap(inner RenderService) RenderService {
	s.inner = inner
	return s
}

func (s *renderLoggingService) Render(ctx context.Context, raw []byte) (models.RenderResponse, error) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = s.logger
	}

	start := time.Now()
	resp, err := s.inner.Render(ctx, raw)
	elapsed := time.Since(start)

	if err != nil {
		event := log.Err(err).Int("body_bytes", len(raw)).Dur("duration", elapsed)
		var compileErr *mjml.CompileError
		if errors.As(err, &compileErr) {
			event = event.Int("diagnostics", len(compileErr.Errors))
		}
		event.Msg("failed to compile mjml")
		return resp, err
	}

	log.Debug().
		Int("body_bytes", len(raw)).
		Int("html_bytes", len(resp.HTML)).
		Int("diagnostics", len(resp.Errors)).
		Dur("duration", elapsed).
		Msg("mjml rendered")

	return resp, nil
}
