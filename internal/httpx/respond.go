package httpx

import (
	"encoding/json"
	"net/http"

	"tienda-be/internal/apperror"
)

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error converts any error into its JSON response at the handler boundary.
func Error(w http.ResponseWriter, err error) {
	WriteJSON(w, apperror.StatusOf(err), map[string]string{
		"detail": apperror.DetailOf(err),
	})
}

// DecodeJSON parses a request body, rejecting malformed payloads uniformly.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.BadRequest("invalid request body")
	}
	return nil
}
