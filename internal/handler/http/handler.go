package http

import (
	"github.com/MKhiriev/go-mjml-api/internal/auth"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/service"
)

type Handler struct {
	services *service.Services
	gate     auth.Gate
	maxBody  int64

	logger *logger.Logger
}

// NewHandler wires the transport to services. maxBody is the largest accepted
// request body in bytes; zero or less disables the limit.
func NewHandler(services *service.Services, gate auth.Gate, maxBody int64, logger *logger.Logger) *Handler {
	logger.Info().
		Str("auth_mode", string(gate.Mode())).
		Int64("max_body", maxBody).
		Msg("http handler created")

	return &Handler{
		services: services,
		gate:     gate,
		maxBody:  maxBody,
		logger:   logger,
	}
}
