package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.With(h.verifySignature).Get("/eid/nr_sync", h.clearCache)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/modules", h.getModules)

		r.Route("/api/sync/{module}", func(r chi.Router) {
			r.Post("/", h.runSync)
			r.Get("/state", h.getSyncState)
		})

		r.Get("/api/targets", h.getTargets)
		r.Put("/api/targets/{target}/lock", h.lockTarget)
		r.Delete("/api/targets/{target}/lock", h.unlockTarget)

		r.Get("/api/lock", h.getModuleLock)
		r.Put("/api/lock", h.lockModule)
		r.Delete("/api/lock", h.unlockModule)

		r.Route("/api/synclist/{module}", func(r chi.Router) {
			r.Get("/", h.getSyncList)
			r.Post("/", h.addToSyncList)
			r.Delete("/{area}/{page}", h.removeFromSyncList)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
