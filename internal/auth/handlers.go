package auth

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/CampusStream/CS-Backend/internal/access"
	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/CampusStream/CS-Backend/internal/middleware"
	"github.com/CampusStream/CS-Backend/internal/videos"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUserData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	User    loginUserData `json:"user"`
}

// secureCookies switches cookie flags for cross-site production use.
// Local dev over plain HTTP needs Secure off so httptest and localhost
// frontends work.
func secureCookies() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	}
	if secureCookies() {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.ValidationMsg("Invalid request format"))
		return
	}

	if _, err := RegisterUser(req.Username, req.Email, req.Password, req.Password2); err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.SuccessMsg(w, http.StatusCreated, "User registered successfully", nil)
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.ValidationMsg("Invalid request format"))
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, httpx.ValidationMsg("Username and password are required"))
		return
	}

	user, ok := VerifyUser(req.Username, req.Password)
	if !ok {
		httpx.WriteError(w, httpx.Unauthenticated("Invalid credentials"))
		return
	}

	token, err := CreateSession(user.UserID, cfg.SessionTTL(), cfg.Session.SinglePerUser)
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	http.SetCookie(w, sessionCookie(token, int(cfg.SessionTTL().Seconds())))

	httpx.JSON(w, http.StatusOK, loginResponse{
		Status:  "success",
		Message: "Login successful",
		User:    loginUserData{Username: user.Username, Email: user.Email},
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session_id"); err == nil {
		if err := RevokeSession(cookie.Value); err != nil {
			httpx.WriteError(w, httpx.Internal(err))
			return
		}
	}

	// Replace both auth cookies with expired ones.
	http.SetCookie(w, sessionCookie("", -1))
	http.SetCookie(w, &http.Cookie{
		Name:   middleware.CSRFCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	httpx.SuccessMsg(w, http.StatusOK, "Logout successful", nil)
}

type profileData struct {
	Username string                 `json:"username"`
	Email    string                 `json:"email"`
	Videos   []videos.VideoResponse `json:"videos"`
}

func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	user, err := UserByID(caller.UserID)
	if err != nil {
		httpx.WriteError(w, httpx.NotFound("User not found"))
		return
	}

	owned, err := videos.ListByOwner(caller.UserID)
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	httpx.Success(w, http.StatusOK, profileData{
		Username: user.Username,
		Email:    user.Email,
		Videos:   videos.ToResponses(owned),
	})
}

// CSRFHandler issues the anti-forgery token for cookie-based sessions. The
// cookie is intentionally readable by the frontend, which echoes it back in
// the X-CSRF-Token header (double-submit).
func CSRFHandler(w http.ResponseWriter, r *http.Request) {
	token := uuid.New().String()

	c := &http.Cookie{
		Name:     middleware.CSRFCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	if secureCookies() {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, c)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"csrfToken": token})
}
