package videos

import (
	"github.com/CampusStream/CS-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the video CRUD behind the session gate. The fetcher
// is injected so this package stays independent of the session storage.
func SetupRoutes(fetcher middleware.SessionFetcher) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListHandler)
	r.Post("/", UploadHandler)
	r.Get("/{id}", GetHandler)
	r.Patch("/{id}", UpdateHandler)
	r.Delete("/{id}", DeleteHandler)

	return r
}
