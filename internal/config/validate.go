package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Shopping.validate(); err != nil {
		return fmt.Errorf("shopping: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Disabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	if r.CleanupInterval < time.Second {
		return fmt.Errorf("cleanup_interval must be >= 1s (got %v)", r.CleanupInterval)
	}
	return nil
}

func (s *ShoppingConfig) validate() error {
	if raw := strings.TrimSpace(s.TaxRateRaw); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("tax_rate: invalid number %q: %w", raw, err)
		}
		s.TaxRate = rate
	}
	if len(s.Prices) == 0 {
		return fmt.Errorf("prices must not be empty")
	}
	for item, price := range s.Prices {
		if price < 0 {
			return fmt.Errorf("price of %q must be >= 0 (got %v)", item, price)
		}
	}
	return nil
}
