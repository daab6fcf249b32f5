package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// glossaryStore defines the minimal interface needed by DictionaryHandler.
type glossaryStore interface {
	Define(ctx context.Context, term, definition string)
	Lookup(ctx context.Context, term string) string
}

// DictionaryHandler serves glossary lookup and definition endpoints.
type DictionaryHandler struct {
	store glossaryStore
	log   *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(store glossaryStore, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{store: store, log: logger.With("handler", "dictionary")}
}

type defineRequest struct {
	Definition *string `json:"definition"`
}

type entryResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Lookup handles GET /dictionary/{word}. Unknown words are answered with 200
// and the fallback definition.
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	writeJSON(w, http.StatusOK, entryResponse{
		Word:       word,
		Definition: h.store.Lookup(r.Context(), word),
	})
}

// Define handles PUT /dictionary/{word}, inserting or replacing the definition.
func (h *DictionaryHandler) Define(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	var req defineRequest
	if err := decodeBody(w, r, "body", "a JSON object", &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Definition == nil {
		handleError(h.log, w, r, domain.NewValidationError("definition", "required"))
		return
	}

	h.store.Define(r.Context(), word, *req.Definition)

	writeJSON(w, http.StatusOK, entryResponse{
		Word:       word,
		Definition: *req.Definition,
	})
}
