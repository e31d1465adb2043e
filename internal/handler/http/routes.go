package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RenderPath is the only business endpoint.
const RenderPath = "/v1/render"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// health checks, never authenticated
	router.Get("/healthz", h.health)
	router.Get("/livez", h.health)
	router.Get("/readyz", h.health)

	router.Group(func(r chi.Router) {
		r.Use(h.limitBody, h.auth)
		r.Post(RenderPath, h.render)
	})

	// an unknown path and a wrong method on a known path look the same
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
