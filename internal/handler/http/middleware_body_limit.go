// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/utils"
)

// limitBody answers 413 with an empty body when the request body is larger
// than h.maxBody. A declared Content-Length is checked up front; otherwise at
// most maxBody+1 bytes are read before giving up. The accepted body is
// restored on r so later handlers can read it again.
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBody <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > h.maxBody {
			utils.WriteEmpty(w, http.StatusRequestEntityTooLarge)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				utils.WriteEmpty(w, http.StatusRequestEntityTooLarge)
				return
			}
			logger.FromRequest(r).Err(err).Msg("failed to read request body")
			utils.WriteEmpty(w, http.StatusBadRequest)
			return
		}

		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}
