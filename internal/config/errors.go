// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidServerConfigs indicates an unusable listener setting
	// (for example, a port outside 1..65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMaxBody indicates MAX_BODY is not a positive byte size.
	ErrInvalidMaxBody = errors.New("invalid max body size")
	// ErrInvalidRenderConfigs indicates unusable compiler settings
	// (unknown validation level or backend, negative limits).
	ErrInvalidRenderConfigs = errors.New("invalid render configuration")
	// ErrInvalidAuthConfigs indicates an unknown authentication type.
	ErrInvalidAuthConfigs = errors.New("invalid authentication configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
