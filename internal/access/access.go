package access

import (
	"context"

	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/CampusStream/CS-Backend/internal/utils"
)

// Caller is the resolved identity of the requester. The zero value is the
// anonymous caller; handlers never see a session token, only this.
type Caller struct {
	UserID string
}

func (c Caller) Authenticated() bool { return c.UserID != "" }

// FromContext builds the Caller from the userID the session middleware
// injected. Absence of identity is a normal outcome, not an error.
func FromContext(ctx context.Context) Caller {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Caller{}
	}
	return Caller{UserID: userID}
}

// Require returns the caller or an authentication error when anonymous.
func Require(ctx context.Context) (Caller, error) {
	c := FromContext(ctx)
	if !c.Authenticated() {
		return Caller{}, httpx.Unauthenticated("Authentication required")
	}
	return c, nil
}

// RequireOwner gates mutations on an owned resource. The caller must be
// authenticated and must own the record.
func RequireOwner(c Caller, ownerID string) error {
	if !c.Authenticated() {
		return httpx.Unauthenticated("Authentication required")
	}
	if c.UserID != ownerID {
		return httpx.Forbidden("You do not have access to this resource")
	}
	return nil
}
