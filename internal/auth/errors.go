// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrUnknownMode        = errors.New("unknown authentication mode")
	ErrMissingCredentials = errors.New("authentication credentials are not configured")
)
