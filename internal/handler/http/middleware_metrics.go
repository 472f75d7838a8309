package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records request count and duration per route. The chi route
// pattern is used as the label so that /api/notes/1 and /api/notes/2 share a
// single series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.ObserveRequest(route, r.Method, strconv.Itoa(mw.Status()), time.Since(start))
	})
}
