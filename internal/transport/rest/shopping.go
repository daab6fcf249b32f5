package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// checkoutService defines the minimal interface needed by ShoppingHandler.
type checkoutService interface {
	Checkout(ctx context.Context, items []string) domain.Receipt
}

// ShoppingHandler serves the purchase-total endpoint.
type ShoppingHandler struct {
	svc checkoutService
	log *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc checkoutService, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, log: logger.With("handler", "shopping")}
}

type shoppingResponse struct {
	Items []string `json:"items"`
	Total float64  `json:"total"`
}

// Total handles POST /shopping. The body is a JSON array of item names.
func (h *ShoppingHandler) Total(w http.ResponseWriter, r *http.Request) {
	items, err := decodeStrings(w, r, "items")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	receipt := h.svc.Checkout(r.Context(), items)

	writeJSON(w, http.StatusOK, shoppingResponse{
		Items: receipt.Items,
		Total: receipt.Total,
	})
}
