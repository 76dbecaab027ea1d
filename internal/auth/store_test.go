package auth

import (
	"errors"
	"testing"

	"github.com/CampusStream/CS-Backend/internal/httpx"
)

// Validation failures must be caught before any database access, so these
// run without a database.

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var e *httpx.Error
	if !errors.As(err, &e) || e.Kind != httpx.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	return e.Fields
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	_, err := RegisterUser("", "", "", "")
	fields := validationFields(t, err)

	for _, f := range []string{"username", "email", "password", "password2"} {
		if fields[f] == "" {
			t.Errorf("expected error for field %q, got fields %v", f, fields)
		}
	}
}

func TestRegisterUser_WhitespaceUsername(t *testing.T) {
	_, err := RegisterUser("   ", "a@b.c", "pass", "pass")
	fields := validationFields(t, err)
	if fields["username"] == "" {
		t.Errorf("whitespace-only username must fail, got %v", fields)
	}
}

func TestRegisterUser_PasswordMismatch(t *testing.T) {
	_, err := RegisterUser("alice", "alice@example.com", "secret1", "secret2")
	fields := validationFields(t, err)
	if fields["password"] == "" {
		t.Errorf("expected password mismatch error, got %v", fields)
	}
}
