// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// CommandRunner runs an external command with stdin and captures its output.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands with os/exec. The process is killed when ctx is
// done.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.String(), stderr.String(), ctxErr
	}
	return stdout.String(), stderr.String(), err
}

var (
	diagnosticLineRe = regexp.MustCompile(`^Line (\d+)(?: of (.+?))? \(([^)\s]+)\) — (.+)$`)
	coreVersionRe    = regexp.MustCompile(`mjml-core:\s*(\S+)`)
)

// CLICompiler compiles through the Node mjml binary.
type CLICompiler struct {
	path    string
	version string
	runner  CommandRunner
}

// NewCLICompiler checks that the binary at path runs and records its core
// version. A nil runner defaults to ExecRunner.
func NewCLICompiler(ctx context.Context, path string, runner CommandRunner) (*CLICompiler, error) {
	if runner == nil {
		runner = &ExecRunner{}
	}

	stdout, stderr, err := runner.Run(ctx, nil, path, "--version")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCLIVersion, strings.TrimSpace(stderr), err)
	}

	m := coreVersionRe.FindStringSubmatch(stdout)
	if m == nil {
		return nil, fmt.Errorf("%w: unexpected output %q", ErrCLIVersion, strings.TrimSpace(stdout))
	}

	return &CLICompiler{path: path, version: m[1], runner: runner}, nil
}

func (c *CLICompiler) Version() string {
	return c.version
}

func (c *CLICompiler) Compile(ctx context.Context, doc string, opts Options) (Result, error) {
	if strings.TrimSpace(doc) == "" {
		return Result{}, newMalformedError()
	}

	stdout, stderr, err := c.runner.Run(ctx, strings.NewReader(doc), c.path, cliArgs(opts)...)
	diags := parseDiagnostics(stderr, opts.FilePath)

	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		if len(diags) > 0 {
			return Result{}, newValidationError(diags)
		}
		return Result{}, fmt.Errorf("%w: %s: %w", ErrCLIFailed, strings.TrimSpace(stderr), err)
	}

	if opts.ValidationLevel == ValidationStrict && len(diags) > 0 {
		return Result{}, newValidationError(diags)
	}

	return Result{HTML: stdout, Errors: diags}, nil
}

func cliArgs(opts Options) []string {
	level := opts.ValidationLevel
	if level == "" {
		level = ValidationSoft
	}
	return []string{
		"-i", "-s",
		"--config.validationLevel=" + string(level),
		"--config.keepComments=" + strconv.FormatBool(opts.KeepComments),
		"--config.beautify=" + strconv.FormatBool(opts.Beautify),
		"--config.minify=" + strconv.FormatBool(opts.Minify),
	}
}

// parseDiagnostics extracts "Line N of F (tag) — message" lines from the
// CLI's stderr. Lines in any other format are ignored.
func parseDiagnostics(stderr, filePath string) []Diagnostic {
	diags := []Diagnostic{}
	for _, line := range strings.Split(stderr, "\n") {
		m := diagnosticLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		file := m[2]
		if filePath != "" {
			file = filePath
		}
		diags = append(diags, newDiagnostic(n, m[3], file, m[4]))
	}
	return diags
}
