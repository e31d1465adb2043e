package handler

import (
	"github.com/MKhiriev/go-mjml-api/internal/auth"
	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/handler/http"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gate auth.Gate, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.RenderService == nil || gate == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, gate, cfg.MaxBodyBytes(), logger),
	}, nil
}
