package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/auth"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/profile"
)

// ProfileService is implemented by *profile.Service.
type ProfileService interface {
	Register(ctx context.Context, in profile.RegisterInput) error
	Login(ctx context.Context, username, password string) (*profile.LoginResult, error)
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, in profile.UpdateInput) (*models.Profile, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type AuthHandler struct {
	Profiles ProfileService
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Error registering user")
		return
	}

	err := h.Profiles.Register(r.Context(), profile.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Gender:   req.Gender,
	})
	if err != nil {
		writeError(w, err, "Error registering user")
		return
	}

	writeMessage(w, http.StatusOK, "User registered successfully!")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeMessage(w, http.StatusBadRequest, "Error logging in user")
		return
	}

	res, err := h.Profiles.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err, "Error logging in user")
		return
	}

	auth.SetSessionCookie(w, res.Token, res.ExpiresAt)
	writeJSON(w, http.StatusOK, LoginResponse{Message: "Login successful!", Token: res.Token})
}

// Logout drops the session cookie. Tokens are stateless, so an already
// copied token stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logged out")
}
