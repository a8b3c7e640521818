package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/session", h.openSession)
	})

	// routes bound to an open session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/api/session", h.closeSession)

		r.Post("/api/verification", h.verify)
		r.Get("/api/verification", h.verificationStatus)
		r.Delete("/api/verification", h.clearVerification)

		r.Get("/api/documents", h.listDocuments)
		r.Post("/api/documents", h.createDocument)
		r.Get("/api/documents/{id}", h.getDocument)
		r.Put("/api/documents/{id}", h.updateDocumentContent)
		r.Get("/api/documents/{id}/fields", h.getFormFields)

		r.Post("/api/content/check", h.checkContent)
		r.Post("/api/content/mask", h.maskContent)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
