package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/metrics", h.serveMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// workspace routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Get("/api/tree", h.getTree)

		r.Get("/api/files", h.listFiles)
		r.Post("/api/files", h.createFile)
		r.Patch("/api/files/{id}", h.updateFile)
		r.Delete("/api/files/{id}", h.deleteFile)

		r.Get("/api/folders", h.listFolders)
		r.Post("/api/folders", h.createFolder)
		r.Patch("/api/folders/{id}", h.updateFolder)
		r.Delete("/api/folders/{id}", h.deleteFolder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
