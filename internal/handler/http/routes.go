package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitAuth builds the router for the authentication service: registration and
// login are open, logout requires a valid token.
func (h *Handler) InitAuth() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/user/logout", h.logout)
	})

	return router
}

// InitDiary builds the router for the diary service. The public listing and
// asset serving are open; every record operation runs behind the
// verification middleware.
func (h *Handler) InitDiary() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/records/public", h.listPublicRecords)
		r.Get("/assets/{assetName}", h.serveAsset)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/records", h.createRecord)
		r.Get("/api/records", h.listOwnRecords)
		r.Get("/api/records/{recordID}", h.getRecord)
		r.Put("/api/records/{recordID}", h.updateRecord)
		r.Delete("/api/records/{recordID}", h.deleteRecord)
	})

	return router
}
