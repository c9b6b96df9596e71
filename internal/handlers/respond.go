package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeError maps err to a status and one of the fixed public messages.
// fallback is shown for anything that is not a validation or auth error.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch apperr.KindOf(err) {
	case apperr.KindAuth:
		writeMessage(w, http.StatusUnauthorized, apperr.MessageOf(err))
	case apperr.KindValidation:
		status := http.StatusBadRequest
		if errors.Is(err, apperr.ErrRegistrationFailed) {
			status = http.StatusConflict
		}
		writeMessage(w, status, apperr.MessageOf(err))
	default:
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
