package http

import (
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/auth"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/utils"
)

// auth runs the authentication gate. A rejected request gets an empty 401
// and the chain stops; an admitted one reaches next exactly once with the
// principal stored under utils.PrincipalCtxKey.
//
// Rejections are logged with the mode only. Which factor failed is never
// logged or returned.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, principal := h.gate.Authorize(r)

		switch decision {
		case auth.Admit:
			logger.FromRequest(r).Debug().Str("principal", principal).Msg("request admitted")
			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
		default:
			logger.FromRequest(r).Warn().
				Str("mode", string(h.gate.Mode())).
				Msg("request rejected by auth gate")
			utils.WriteEmpty(w, http.StatusUnauthorized)
		}
	})
}
