package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the username is unknown so that a
// failed login takes the same time either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// RegisterUser validates the registration payload, hashes the password, and
// inserts the user. Username uniqueness is enforced by the database unique
// index, so two concurrent registrations with the same name cannot both
// succeed.
func RegisterUser(username, email, password, password2 string) (*User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "Username is required"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "Email is required"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if password2 == "" {
		fields["password2"] = "Password confirmation is required"
	}
	if len(fields) > 0 {
		return nil, httpx.Validation(fields)
	}
	if password != password2 {
		return nil, httpx.Validation(map[string]string{"password": "Passwords do not match"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httpx.Internal(err)
	}

	user := User{
		UserID:         uuid.New().String(),
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, httpx.Validation(map[string]string{"username": "Username already taken"})
		}
		return nil, httpx.Internal(err)
	}
	return &user, nil
}

// VerifyUser checks the credentials and returns the user on success. An
// unknown username and a wrong password are indistinguishable to the
// caller.
func VerifyUser(username, password string) (*User, bool) {
	var user User
	err := db.DB.First(&user, "username = ?", username).Error
	if err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, false
	}
	return &user, true
}

// CreateSession issues a fresh unguessable token bound to the user. When
// singlePerUser is set, the user's previous sessions are revoked first;
// multiple concurrent sessions are otherwise allowed.
func CreateSession(userID string, ttl time.Duration, singlePerUser bool) (string, error) {
	if singlePerUser {
		if err := db.DB.Model(&Session{}).
			Where("user_id = ? AND revoked = ?", userID, false).
			Update("revoked", true).Error; err != nil {
			return "", err
		}
	}

	session := Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.DB.Create(&session).Error; err != nil {
		return "", err
	}
	return session.SessionID, nil
}

// RevokeSession marks the session revoked. Revoking an unknown or already
// revoked token is a no-op, not an error.
func RevokeSession(token string) error {
	err := db.DB.Model(&Session{}).
		Where("session_id = ?", token).
		Update("revoked", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// UserByID loads a user by primary key.
func UserByID(userID string) (*User, error) {
	var user User
	if err := db.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
