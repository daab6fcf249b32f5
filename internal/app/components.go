package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/katas-backend/internal/config"
	"github.com/heartmarshall/katas-backend/internal/service/glossary"
	"github.com/heartmarshall/katas-backend/internal/service/shopping"
)

// Components holds the long-lived services shared by all transports.
type Components struct {
	Glossary *glossary.Store
	Shopping *shopping.Service
}

// NewComponents builds the services from configuration. The glossary starts
// with the default seed, overlaid by glossary.seed_file when set.
func NewComponents(cfg *config.Config, logger *slog.Logger) (*Components, error) {
	seed := glossary.DefaultSeed()
	if cfg.Glossary.SeedFile != "" {
		fromFile, err := glossary.LoadSeedFile(cfg.Glossary.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		seed = glossary.MergeSeeds(seed, fromFile)
	}

	return &Components{
		Glossary: glossary.NewStore(logger, seed),
		Shopping: shopping.NewService(logger, cfg.Shopping.Prices, cfg.Shopping.TaxRate),
	}, nil
}
