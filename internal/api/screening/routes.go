package screening

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers screening routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/screening-session", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Post("/{id}/turn", h.ProcessTurn)
		r.Post("/{id}/reset", h.ResetSession)
		r.Get("/{id}/progress", h.GetProgress)
		r.Get("/{id}/history", h.GetHistory)
		r.Get("/{id}/report", h.GetReport)
	})

	r.Get("/screening-keywords", h.GetKeywords)
}
