package shopping

import "github.com/shopspring/decimal"

// Total returns the tax-inclusive cost of items priced against prices,
// rounded half away from zero to 2 decimal places. Items missing from
// prices are skipped. Prices and taxRate are applied as given, negative
// values included.
func Total(prices map[string]float64, items []string, taxRate float64) float64 {
	subtotal := decimal.Zero
	for _, item := range items {
		if price, ok := prices[item]; ok {
			subtotal = subtotal.Add(decimal.NewFromFloat(price))
		}
	}

	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(taxRate))
	total, _ := subtotal.Mul(multiplier).Round(2).Float64()
	return total
}
