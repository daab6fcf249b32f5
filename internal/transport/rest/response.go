package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// maxBodyBytes bounds request bodies; inputs are expected to be tiny lists.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody decodes a single JSON value from the request body into dst.
// Malformed or oversized bodies are reported as validation errors on field.
func decodeBody(w http.ResponseWriter, r *http.Request, field, want string, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.NewValidationError(field, fmt.Sprintf("body exceeds %d bytes", maxErr.Limit))
		}
		return domain.NewValidationError(field, "must be "+want)
	}
	if _, err := dec.Token(); err != io.EOF {
		return domain.NewValidationError(field, "must contain exactly one JSON value")
	}
	return nil
}

// decodeStrings decodes a JSON array of strings. null elements are rejected;
// a null body yields a nil slice.
func decodeStrings(w http.ResponseWriter, r *http.Request, field string) ([]string, error) {
	const want = "a JSON array of strings"

	var raw []*string
	if err := decodeBody(w, r, field, want, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	out := make([]string, len(raw))
	for i, v := range raw {
		if v == nil {
			return nil, domain.NewValidationError(field, "must be "+want)
		}
		out[i] = *v
	}
	return out, nil
}
