package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CampusStream/CS-Backend/internal/middleware"
)

func csrfCall(t *testing.T, method, path string, setup func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	exempt := func(p string) bool { return p == "/login" }
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, path, nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	middleware.CSRFMiddleware(exempt)(inner).ServeHTTP(rec, req)
	return rec
}

func TestCSRF_SafeMethodPasses(t *testing.T) {
	rec := csrfCall(t, http.MethodGet, "/videos", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for GET, got %d", rec.Code)
	}
}

func TestCSRF_ExemptPathPasses(t *testing.T) {
	rec := csrfCall(t, http.MethodPost, "/login", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for exempt path, got %d", rec.Code)
	}
}

// Requests without a session cookie cannot be forged cross-site, so the
// check does not apply.
func TestCSRF_NoSessionCookiePasses(t *testing.T) {
	rec := csrfCall(t, http.MethodPost, "/colleges", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 without session cookie, got %d", rec.Code)
	}
}

func TestCSRF_MissingToken(t *testing.T) {
	rec := csrfCall(t, http.MethodPost, "/videos", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for missing token, got %d", rec.Code)
	}
}

func TestCSRF_TokenMismatch(t *testing.T) {
	rec := csrfCall(t, http.MethodPost, "/videos", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
		r.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "aaa"})
		r.Header.Set(middleware.CSRFHeaderName, "bbb")
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for token mismatch, got %d", rec.Code)
	}
}

func TestCSRF_TokenMatch(t *testing.T) {
	rec := csrfCall(t, http.MethodPost, "/videos", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
		r.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "token-123"})
		r.Header.Set(middleware.CSRFHeaderName, "token-123")
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for matching token, got %d; body: %s", rec.Code, rec.Body.String())
	}
}
