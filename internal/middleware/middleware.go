package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/CampusStream/CS-Backend/internal/utils"
)

type SessionFetcher interface {
	FindSessionByID(id string) (utils.SessionData, error)
}

// SessionMiddleware resolves the session_id cookie into a user identity and
// injects it into the request context. A missing, unknown, revoked, or
// expired session ends the request with 401.
func SessionMiddleware(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				httpx.WriteError(w, httpx.Unauthenticated("Authentication required"))
				return
			}

			session, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				httpx.WriteError(w, httpx.Unauthenticated("Invalid session"))
				return
			}

			if session.Revoked || session.ExpiresAt.Before(time.Now()) {
				httpx.WriteError(w, httpx.Unauthenticated("Session expired"))
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextUserIDKey, session.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSMiddleware echoes the origin back only if it is on the configured
// allow-list, and answers preflight requests before any handler runs.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization, X-CSRF-Token")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
