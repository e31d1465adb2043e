// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RenderRequest is the JSON shape accepted by POST /v1/render. A body that is
// not a JSON object is treated as the MJML document itself.
type RenderRequest struct {
	MJML string `json:"mjml"`
}

// Diagnostic is a single validation finding reported by the MJML compiler.
type Diagnostic struct {
	Line             int    `json:"line"`
	Message          string `json:"message"`
	TagName          string `json:"tagName"`
	FormattedMessage string `json:"formattedMessage"`
}

// RenderResponse is the 200 body of POST /v1/render.
//
// Errors holds the diagnostics collected while compiling; it is always
// present in the JSON, as an empty array when there are none.
type RenderResponse struct {
	HTML        string       `json:"html"`
	MJML        string       `json:"mjml"`
	MJMLVersion string       `json:"mjml_version"`
	Errors      []Diagnostic `json:"errors"`
}

// ErrorResponse is the body of 404 and 500 responses.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []Diagnostic `json:"errors,omitempty"`
}
