// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
	"github.com/MKhiriev/go-mjml-api/models"
	"golang.org/x/sync/semaphore"
)

type renderService struct {
	compiler mjml.Compiler
	opts     mjml.Options
	timeout  time.Duration
	slots    *semaphore.Weighted
}

// NewRenderService builds a RenderService around compiler. Options are fixed
// from cfg for the service's lifetime. At most cfg.MaxConcurrent compiles run
// at once and each is bounded by cfg.Timeout; zero values fall back to
// GOMAXPROCS and no timeout.
func NewRenderService(compiler mjml.Compiler, cfg config.Render) RenderService {
	limit := cfg.MaxConcurrent
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	return &renderService{
		compiler: compiler,
		opts:     renderOptions(cfg),
		timeout:  cfg.Timeout,
		slots:    semaphore.NewWeighted(int64(limit)),
	}
}

func renderOptions(cfg config.Render) mjml.Options {
	return mjml.Options{
		KeepComments:    cfg.PreserveComments(),
		ValidationLevel: mjml.ValidationLevel(cfg.ValidationLevel),
		Beautify:        cfg.BeautifyOutput(),
		Minify:          cfg.MinifyOutput(),
		FilePath:        diagnosticsPath(cfg.FilePath),
	}
}

// diagnosticsPath makes path absolute so diagnostics name a stable location.
// The raw value is kept if it cannot be resolved.
func diagnosticsPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func (s *renderService) Render(ctx context.Context, raw []byte) (models.RenderResponse, error) {
	doc := InterpretBody(raw)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return models.RenderResponse{}, fmt.Errorf("%w: %w: %w", ErrCompileFailed, ErrRenderBusy, err)
	}
	defer s.slots.Release(1)

	result, err := s.compiler.Compile(ctx, doc, s.opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.RenderResponse{}, fmt.Errorf("%w: %w: %w", ErrCompileFailed, ErrRenderTimeout, err)
		}
		return models.RenderResponse{}, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	diags := result.Errors
	if diags == nil {
		diags = []models.Diagnostic{}
	}

	return models.RenderResponse{
		HTML:        result.HTML,
		MJML:        doc,
		MJMLVersion: s.compiler.Version(),
		Errors:      diags,
	}, nil
}
