package shopping

import (
	"context"
	"log/slog"
	"maps"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// Service totals purchases against a fixed price table and tax rate.
type Service struct {
	prices  map[string]float64
	taxRate float64
	log     *slog.Logger
}

// NewService creates a Service. The price table is copied.
func NewService(log *slog.Logger, prices map[string]float64, taxRate float64) *Service {
	return &Service{
		prices:  maps.Clone(prices),
		taxRate: taxRate,
		log:     log.With("service", "shopping"),
	}
}

// Checkout computes the receipt for items. A nil list is reported as empty.
func (s *Service) Checkout(ctx context.Context, items []string) domain.Receipt {
	if items == nil {
		items = []string{}
	}

	total := Total(s.prices, items, s.taxRate)

	s.log.DebugContext(ctx, "purchase totalled",
		slog.Int("items", len(items)),
		slog.Float64("total", total),
	)

	return domain.Receipt{Items: items, Total: total}
}

// TaxRate returns the configured tax rate.
func (s *Service) TaxRate() float64 {
	return s.taxRate
}
