package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CampusStream/CS-Backend/internal/access"
	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/CampusStream/CS-Backend/internal/utils"
)

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), utils.ContextUserIDKey, userID)
}

func TestFromContext_Anonymous(t *testing.T) {
	c := access.FromContext(context.Background())
	if c.Authenticated() {
		t.Error("expected anonymous caller from empty context")
	}
}

func TestFromContext_Authenticated(t *testing.T) {
	c := access.FromContext(authedCtx("user-1"))
	if !c.Authenticated() || c.UserID != "user-1" {
		t.Errorf("expected authenticated caller user-1, got %+v", c)
	}
}

func TestRequire_Anonymous(t *testing.T) {
	_, err := access.Require(context.Background())
	var e *httpx.Error
	if !errors.As(err, &e) || e.Kind != httpx.KindUnauthenticated {
		t.Errorf("expected unauthenticated error, got %v", err)
	}
}

func TestRequireOwner(t *testing.T) {
	owner := access.Caller{UserID: "user-1"}

	if err := access.RequireOwner(owner, "user-1"); err != nil {
		t.Errorf("owner must be allowed, got %v", err)
	}

	err := access.RequireOwner(owner, "user-2")
	var e *httpx.Error
	if !errors.As(err, &e) || e.Kind != httpx.KindForbidden {
		t.Errorf("expected forbidden for non-owner, got %v", err)
	}

	err = access.RequireOwner(access.Caller{}, "user-2")
	if !errors.As(err, &e) || e.Kind != httpx.KindUnauthenticated {
		t.Errorf("expected unauthenticated for anonymous, got %v", err)
	}
}
