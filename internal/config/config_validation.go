// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/docker/go-units"
	"github.com/rs/zerolog"
)

var (
	validationLevels = []string{"strict", "soft", "skip"}
	backends         = []string{"native", "cli"}
	authTypes        = []string{"none", "basic", "token"}
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Missing credentials for an enabled basic or token gate are not an error
// here: the gate is still built and rejects every request.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	maxBody, err := units.RAMInBytes(cfg.Server.MaxBody)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidMaxBody, cfg.Server.MaxBody, err)
	}
	if maxBody <= 0 {
		return fmt.Errorf("%w: %q must be positive", ErrInvalidMaxBody, cfg.Server.MaxBody)
	}

	if !slices.Contains(validationLevels, cfg.Render.ValidationLevel) {
		return fmt.Errorf("%w: validation level %q", ErrInvalidRenderConfigs, cfg.Render.ValidationLevel)
	}
	if !slices.Contains(backends, cfg.Render.Backend) {
		return fmt.Errorf("%w: backend %q", ErrInvalidRenderConfigs, cfg.Render.Backend)
	}
	if cfg.Render.Backend == "cli" && cfg.Render.CLIPath == "" {
		return fmt.Errorf("%w: cli backend needs an mjml executable path", ErrInvalidRenderConfigs)
	}
	if cfg.Render.Timeout < 0 || cfg.Render.MaxConcurrent < 0 {
		return fmt.Errorf("%w: timeout and max concurrent renders must be >= 0", ErrInvalidRenderConfigs)
	}

	if !slices.Contains(authTypes, cfg.Auth.Type) {
		return fmt.Errorf("%w: type %q", ErrInvalidAuthConfigs, cfg.Auth.Type)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
