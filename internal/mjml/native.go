// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"context"
	"fmt"
	"strings"
)

// NativeVersion is reported by NativeCompiler.Version.
const NativeVersion = "4.15.3-go"

// NativeCompiler compiles MJML in-process. It holds no state and is safe for
// concurrent use.
type NativeCompiler struct{}

func NewNativeCompiler() *NativeCompiler {
	return &NativeCompiler{}
}

func (c *NativeCompiler) Version() string {
	return NativeVersion
}

func (c *NativeCompiler) Compile(ctx context.Context, doc string, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(doc) == "" {
		return Result{}, newMalformedError()
	}

	root, err := parse(doc, opts.KeepComments)
	if err != nil {
		return Result{}, fmt.Errorf("parsing mjml: %w", err)
	}
	if root == nil {
		return Result{}, newMalformedError()
	}

	diags := []Diagnostic{}
	if opts.ValidationLevel != ValidationSkip {
		found, err := validate(ctx, root, opts.FilePath)
		if err != nil {
			return Result{}, err
		}
		diags = append(diags, found...)
	}

	if opts.ValidationLevel == ValidationStrict && len(diags) > 0 {
		return Result{}, newValidationError(diags)
	}

	out, err := render(ctx, root)
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: out, Errors: diags}, nil
}
