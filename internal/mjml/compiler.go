// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mjml-api/models"
)

//go:generate mockgen -source=compiler.go -destination=../mock/compiler_mock.go -package=mock

// Compiler turns an MJML document into HTML.
type Compiler interface {
	// Compile renders doc. It returns *CompileError when the document cannot
	// be rendered; other errors (timeouts, a crashed subprocess) are
	// returned wrapped.
	Compile(ctx context.Context, doc string, opts Options) (Result, error)
	// Version reports the compiler version echoed back to clients.
	Version() string
}

// ValidationLevel controls how diagnostics affect a compile.
type ValidationLevel string

const (
	// ValidationStrict fails the compile on any diagnostic.
	ValidationStrict ValidationLevel = "strict"
	// ValidationSoft returns diagnostics alongside the HTML.
	ValidationSoft ValidationLevel = "soft"
	// ValidationSkip disables validation.
	ValidationSkip ValidationLevel = "skip"
)

// Backend names accepted by config.Render.Backend.
const (
	BackendNative = "native"
	BackendCLI    = "cli"
)

// Options are the per-compile settings.
type Options struct {
	KeepComments    bool
	ValidationLevel ValidationLevel
	// Beautify and Minify are passed through to the CLI backend only.
	// MJML 4 itself treats them as deprecated.
	Beautify bool
	Minify   bool
	// FilePath is reported in diagnostics when set.
	FilePath string
}

// Result is a successful compile.
type Result struct {
	HTML   string
	Errors []Diagnostic
}

// Diagnostic is a single validation finding.
type Diagnostic = models.Diagnostic

func newDiagnostic(line int, tag, filePath, message string) Diagnostic {
	return Diagnostic{
		Line:             line,
		Message:          message,
		TagName:          tag,
		FormattedMessage: formatDiagnostic(line, tag, filePath, message),
	}
}

func formatDiagnostic(line int, tag, filePath, message string) string {
	if filePath != "" {
		return fmt.Sprintf("Line %d of %s (%s) — %s", line, filePath, tag, message)
	}
	return fmt.Sprintf("Line %d (%s) — %s", line, tag, message)
}
