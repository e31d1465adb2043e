package service

import (
	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
)

type Services struct {
	RenderService RenderService
}

func NewServices(compiler mjml.Compiler, cfg config.Render, logger *logger.Logger) *Services {
	render := NewRenderService(compiler, cfg)

	return &Services{
		RenderService: NewRenderLoggingService(logger).Wrap(render),
	}
}
