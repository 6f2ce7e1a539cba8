package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivlasenko/bookvault/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorJSON writes an error body in the {"detail": ...} shape.
func errorJSON(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError maps service errors onto HTTP statuses with generic client
// messages. Internal detail never reaches the response body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUsernameTaken):
		errorJSON(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		errorJSON(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		errorJSON(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, common.ErrorNotFound):
		errorJSON(w, http.StatusNotFound, "Book not found")
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}
