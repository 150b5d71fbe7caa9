package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the boundary router. Every route answers with the uniform
// envelope: {"success":true, ...} or {"success":false, "message": ...}.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/city", h.city)
		r.Put("/api/user/city", h.updateCity)
		r.Put("/api/user/settings", h.updateSettings)

		r.Post("/api/reminders", h.addReminder)
		r.Get("/api/reminders", h.listReminders)
		r.Delete("/api/reminders/{id}", h.deleteReminder)

		r.Post("/api/history", h.saveHistory)
		r.Get("/api/history", h.listHistory)
	})

	return router
}
