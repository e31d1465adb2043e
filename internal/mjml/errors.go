// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"errors"
	"strings"
)

// MalformedMessage is the CompileError message for documents without any
// MJML element.
const MalformedMessage = "Malformed MJML. Check that your structure is correct and enclosed in <mjml> tags."

var (
	ErrCLIFailed  = errors.New("mjml cli failed")
	ErrCLIVersion = errors.New("could not determine mjml cli version")
)

// CompileError is returned when a document cannot be rendered. Errors lists
// the diagnostics that caused the failure and may be empty.
type CompileError struct {
	Message string
	Errors  []Diagnostic
}

func (e *CompileError) Error() string {
	return e.Message
}

func newMalformedError() *CompileError {
	return &CompileError{Message: MalformedMessage}
}

func newValidationError(diags []Diagnostic) *CompileError {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.FormattedMessage)
	}
	return &CompileError{
		Message: "ValidationError: " + strings.Join(lines, "\n"),
		Errors:  diags,
	}
}
