package http

import (
	"net/http"

	"github.com/MKhiriev/go-bank-validator/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/api/transactions/validate", h.validateTransaction)
	router.Get("/api/regions", h.getRegions)
	router.Get("/api/version/", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
