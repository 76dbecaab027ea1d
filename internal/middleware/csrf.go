package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/CampusStream/CS-Backend/internal/httpx"
)

const (
	CSRFCookieName = "csrftoken"
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRFMiddleware applies a double-submit check to state-changing requests
// from cookie-authenticated browsers: the X-CSRF-Token header must match
// the csrftoken cookie. Routes are exempted through the isExempt predicate,
// driven by explicit configuration.
func CSRFMiddleware(isExempt func(path string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			if isExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Only cookie-based sessions are forgeable cross-site.
			if _, err := r.Cookie("session_id"); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil || cookie.Value == "" {
				httpx.WriteError(w, httpx.Forbidden("CSRF token missing"))
				return
			}
			header := r.Header.Get(CSRFHeaderName)
			if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
				httpx.WriteError(w, httpx.Forbidden("CSRF token mismatch"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
