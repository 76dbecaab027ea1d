package auth

import (
	"github.com/CampusStream/CS-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() chi.Router {
	sessionFetcher := SessionInfo{}

	r := chi.NewRouter()
	r.Post("/register", RegisterHandler)
	r.With(middleware.RateLimit(cfg.Login.RatePerMinute, cfg.Login.Burst)).
		Post("/login", LoginHandler)
	r.Get("/csrf", CSRFHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/logout", LogoutHandler)
		r.Get("/profile", ProfileHandler)
	})

	return r
}
