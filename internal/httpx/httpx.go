package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Kind classifies an error into the response code it maps to.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindRateLimited
	KindInternal
)

// Error is the typed error the handlers translate into a response envelope.
// Fields carries per-field validation messages when Kind is KindValidation.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	// Err is the underlying cause, logged but never sent to the client.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func ValidationMsg(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

func statusFor(k Kind) int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// envelope is the response shape shared by every endpoint:
// {"status":"success"|"error", ...}.
type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Count   *int              `json:"count,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes v as the response body with the given code. Handlers whose
// response shape falls outside the shared envelope use this directly.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	JSON(w, code, v)
}

// Success writes {"status":"success","data":...} with the given code.
func Success(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, envelope{Status: "success", Data: data})
}

// SuccessMsg writes a success envelope with a message and optional data.
func SuccessMsg(w http.ResponseWriter, code int, msg string, data any) {
	writeJSON(w, code, envelope{Status: "success", Message: msg, Data: data})
}

// SuccessList writes a success envelope carrying data plus its count.
func SuccessList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: data, Count: &count})
}

// WriteError maps a typed error onto the error envelope. Unexpected errors
// are logged server-side and returned as a generic message, never as the
// underlying error text.
func WriteError(w http.ResponseWriter, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal(err)
	}
	if e.Kind == KindInternal {
		log.Printf("internal error: %v", e)
	}
	writeJSON(w, statusFor(e.Kind), envelope{
		Status:  "error",
		Message: e.Message,
		Errors:  e.Fields,
	})
}
