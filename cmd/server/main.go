package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/MKhiriev/go-mjml-api/internal/auth"
	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/handler"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/server"
	"github.com/MKhiriev/go-mjml-api/internal/service"
	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/subosito/gotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	// .env is optional; real environment variables win over it
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error loading .env: %v\n", err)
	}

	// set before anything sizes itself from GOMAXPROCS
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("mjml-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("mjml-server", cfg.Log.Level)

	log.Debug().Int("gomaxprocs", runtime.GOMAXPROCS(0)).Msg("maxprocs set")
	log.Info().Any("config", cfg.Redacted()).Msg("parsed configuration")
	if cfg.Render.BeautifyOutput() || cfg.Render.MinifyOutput() {
		log.Warn().Msg("beautify and minify are accepted for compatibility and have no effect")
	}

	compiler, err := newCompiler(context.Background(), cfg.Render, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mjml compiler")
	}
	log.Info().Str("backend", cfg.Render.Backend).Str("mjml_version", compiler.Version()).Msg("mjml compiler ready")

	gate, err := auth.NewGate(cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth gate")
	}

	services := service.NewServices(compiler, cfg.Render, log)

	handlers, err := handler.NewHandlers(services, gate, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
