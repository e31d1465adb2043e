package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
)

// newCompiler picks the compile backend. runner is only used by the CLI
// backend; nil means os/exec.
func newCompiler(ctx context.Context, cfg config.Render, runner mjml.CommandRunner) (mjml.Compiler, error) {
	switch cfg.Backend {
	case mjml.BackendNative, "":
		return mjml.NewNativeCompiler(), nil
	case mjml.BackendCLI:
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		c, err := mjml.NewCLICompiler(ctx, cfg.CLIPath, runner)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown render backend %q", cfg.Backend)
	}
}
