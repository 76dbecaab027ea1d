package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CampusStream/CS-Backend/internal/httpx"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %s", rec.Body.String())
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Success(rec, http.StatusOK, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
}

func TestSuccessListCount(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.SuccessList(rec, []string{"a", "b"}, 2)

	body := decode(t, rec)
	if body["count"] != float64(2) {
		t.Errorf("expected count 2, got %v", body["count"])
	}
}

func TestWriteError_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", httpx.ValidationMsg("bad input"), http.StatusBadRequest},
		{"unauthenticated", httpx.Unauthenticated("no"), http.StatusUnauthorized},
		{"forbidden", httpx.Forbidden("no"), http.StatusForbidden},
		{"not found", httpx.NotFound("gone"), http.StatusNotFound},
		{"internal", httpx.Internal(errors.New("boom")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpx.WriteError(rec, tc.err)
			if rec.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, rec.Code)
			}
			body := decode(t, rec)
			if body["status"] != "error" {
				t.Errorf("expected status error, got %v", body["status"])
			}
		})
	}
}

// Internal error detail must never reach the client.
func TestWriteError_InternalIsGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, httpx.Internal(errors.New("pq: connection refused at 10.1.2.3")))

	if strings.Contains(rec.Body.String(), "10.1.2.3") {
		t.Errorf("internal detail leaked to client: %s", rec.Body.String())
	}
	body := decode(t, rec)
	if body["message"] != "Internal server error" {
		t.Errorf("expected generic message, got %v", body["message"])
	}
}

func TestWriteError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, httpx.Validation(map[string]string{"username": "Username is required"}))

	body := decode(t, rec)
	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected errors map, got %v", body["errors"])
	}
	if errs["username"] != "Username is required" {
		t.Errorf("expected field message, got %v", errs["username"])
	}
}
