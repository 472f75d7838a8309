package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Method("GET", "/metrics", promhttp.Handler())
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/created", h.listCreated)
			r.Get("/shared", h.listShared)

			r.Route("/{noteID}", func(r chi.Router) {
				r.Get("/", h.getNote)
				r.Put("/", h.updateNote)
				r.Patch("/", h.updateNote)
				r.Delete("/", h.deleteNote)
				r.Post("/share", h.shareNote)
			})
		})
	})

	return router
}
