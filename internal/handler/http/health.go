package http

import (
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/app"
	"github.com/MKhiriev/go-mjml-api/internal/utils"
	"github.com/MKhiriev/go-mjml-api/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteEmpty(w, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	resp := models.ErrorResponse{Message: app.MsgNotFoundHint}
	if _, err := utils.WriteJSON(w, resp, http.StatusNotFound); err != nil {
		h.logger.Err(err).Msg("error writing not found response")
	}
}
