package auth

import (
	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/utils"
)

// SessionInfo adapts the sessions table to the middleware's fetcher
// interface.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var session Session

	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		Revoked:   session.Revoked,
	}, nil
}
