package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/auth"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/profile"
)

type UserInfoResponse struct {
	User *models.Profile `json:"user"`
}

// UpdateUserRequest mirrors the profile form. Username is accepted for
// compatibility with the form but ignored: the token decides whose record
// is written.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Post     string `json:"post"`
	Gender   string `json:"gender"`
}

type ProfileHandler struct {
	Profiles ProfileService
}

func (h *ProfileHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	p, err := h.Profiles.GetProfile(r.Context(), auth.TokenFromRequest(r))
	if err != nil {
		writeError(w, err, "Authorization failed")
		return
	}
	writeJSON(w, http.StatusOK, UserInfoResponse{User: p})
}

func (h *ProfileHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	if token == "" {
		writeError(w, apperr.ErrInvalidToken, "")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Something went wrong")
		return
	}

	p, err := h.Profiles.UpdateProfile(r.Context(), token, profile.UpdateInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
		Post:     req.Post,
		Gender:   req.Gender,
	})
	if err != nil {
		writeError(w, err, "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
