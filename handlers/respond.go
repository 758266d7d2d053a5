package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/flashdeck/flashdeck-api/apperr"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respondJSON: encode response: %v", err)
	}
}

// respondError maps the error taxonomy to a status and always produces an
// {"error": ...} body, so a failure is never mistaken for an empty result.
func respondError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)

	status := http.StatusBadGateway
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validationf("decode request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.Validationf("%v", err)
	}
	return nil
}
