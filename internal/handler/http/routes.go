package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getVersion)

	router.Route("/api/records/{kind}", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.Get("/{id}", h.getRecord)
		r.Delete("/{id}", h.deleteRecord)

		r.With(h.withHashCheck).Post("/", h.createRecord)
		r.With(h.withHashCheck).Put("/{id}", h.updateRecord)
	})

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", h.syncStatus)
		r.Get("/conflicts", h.syncConflicts)
		r.Post("/drain", h.drain)

		r.Group(func(r chi.Router) {
			r.Use(h.withHashCheck)
			r.Put("/strategy", h.setStrategy)
			r.Put("/settings", h.setSettings)
			r.Put("/online", h.setOnline)
		})

		r.Get("/dead", h.listDeadLetter)
		r.Post("/dead/{id}/retry", h.retryDeadLetter)
		r.Delete("/dead/{id}", h.deleteDeadLetter)
	})

	router.Route("/api/session", func(r chi.Router) {
		r.With(h.withHashCheck).Post("/unlock", h.unlock)
		r.Post("/lock", h.lock)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
