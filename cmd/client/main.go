// Command mjml-render-client sends an MJML document to a render server and
// prints the resulting HTML.
//
//	mjml-render-client --url http://localhost:8080 --token secret email.mjml > email.html
//	cat email.mjml | mjml-render-client --user admin --password pass -
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-mjml-api/internal/adapter"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type options struct {
	address  string
	token    string
	username string
	password string
	timeout  time.Duration
	health   bool
	verbose  bool
	version  bool
	input    string
}

type clientFactory func(cfg adapter.Config, log *logger.Logger) (adapter.RenderClient, error)

var errUsage = errors.New("usage: mjml-render-client [flags] <file.mjml|->")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, adapter.NewHTTPRenderClient); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("mjml-render-client", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.address, "url", "u", envOr("MJML_SERVER_URL", "http://localhost:80"), "render server address")
	fs.StringVarP(&opts.token, "token", "t", os.Getenv("MJML_TOKEN"), "shared token for token auth")
	fs.StringVar(&opts.username, "user", "", "username for basic auth")
	fs.StringVar(&opts.password, "password", "", "password for basic auth")
	fs.DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")
	fs.BoolVar(&opts.health, "health", false, "check /healthz and exit")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&opts.version, "version", false, "print build info and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.version || opts.health {
		return opts, nil
	}

	if fs.NArg() != 1 {
		return options{}, errUsage
	}
	opts.input = fs.Arg(0)

	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, newClient clientFactory) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	if opts.version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Fprintf(stdout, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			orNA(info.BuildVersion()), orNA(info.BuildDate()), orNA(info.BuildCommit()))
		return nil
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewConsoleLogger("mjml-client", level)

	client, err := newClient(adapter.Config{
		Address:  opts.address,
		Token:    opts.token,
		Username: opts.username,
		Password: opts.password,
		Timeout:  opts.timeout,
	}, log)
	if err != nil {
		return fmt.Errorf("create render client: %w", err)
	}

	if opts.health {
		if err = client.Health(ctx); err != nil {
			return fmt.Errorf("server is not healthy: %w", err)
		}
		fmt.Fprintln(stdout, "ok")
		return nil
	}

	doc, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	resp, err := client.Render(ctx, doc)
	if err != nil {
		var compileErr *adapter.CompileError
		if errors.As(err, &compileErr) {
			printDiagnostics(stderr, compileErr.Errors)
		}
		return err
	}

	printDiagnostics(stderr, resp.Errors)
	_, err = io.WriteString(stdout, resp.HTML)
	return err
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}

func printDiagnostics(w io.Writer, diags []models.Diagnostic) {
	for _, d := range diags {
		msg := d.FormattedMessage
		if msg == "" {
			msg = d.Message
		}
		fmt.Fprintln(w, msg)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
