package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/service/words"
)

// WordsHandler serves the positional character picker.
type WordsHandler struct {
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(logger *slog.Logger) *WordsHandler {
	return &WordsHandler{log: logger.With("handler", "words")}
}

type wordsResponse struct {
	Result string `json:"result"`
}

// Pick handles POST /words. The body is a JSON array of words; a word shorter
// than its position requires is answered with 400.
func (h *WordsHandler) Pick(w http.ResponseWriter, r *http.Request) {
	list, err := decodeStrings(w, r, "words")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := words.Pick(list)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordsResponse{Result: result})
}
