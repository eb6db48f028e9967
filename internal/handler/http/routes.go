package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the front controller serving every route of the API.
func (h *Handler) Init() http.Handler {
	return NewDispatcher(h.router(), h.handleError, h.logger, h.Stages()...)
}

// Stages returns the pre-routing stages in execution order.
func (h *Handler) Stages() []Stage {
	return []Stage{
		h.attachRequestLogger,
		setSecurityHeaders,
		applyCORS,
		h.parseJSONBody,
	}
}

func (h *Handler) router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(middleware.GetHead)

	router.Get("/healthz", endpoint(h.healthz))
	router.Get("/ping", endpoint(h.ping))
	router.Get("/", endpoint(h.root))

	// a known path with an unsupported method is answered like an unknown
	// path, so callers cannot probe which routes exist
	router.NotFound(endpoint(h.notFound))
	router.MethodNotAllowed(endpoint(h.notFound))

	return router
}
