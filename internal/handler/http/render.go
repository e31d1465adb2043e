// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/utils"
)

// render compiles the request body. A compile failure of any kind is a 500
// with the compiler diagnostics, if any, in the body; the service layer has
// already logged it.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.WriteEmpty(w, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("error reading request body")
		utils.WriteEmpty(w, http.StatusBadRequest)
		return
	}

	resp, err := h.services.RenderService.Render(r.Context(), raw)
	if err != nil {
		status, body := renderErrorResponse(err)
		if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
			log.Err(writeErr).Msg("error writing render error response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing render response")
	}
}
