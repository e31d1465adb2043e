// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// render API handlers and clients.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording of the API
// consistent between the server and the client.
package app

const (
	// MsgFailedToCompile is the message of every 500 render response,
	// whatever made the compilation fail.
	MsgFailedToCompile = "Failed to compile mjml"

	// MsgNotFoundHint is returned for any route other than the render
	// endpoint and the health checks.
	MsgNotFoundHint = "You're probably looking for /v1/render"
)
