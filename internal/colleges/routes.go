package colleges

import "github.com/go-chi/chi/v5"

func SetupRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", ListHandler)
	r.Post("/", CreateHandler)
	return r
}
