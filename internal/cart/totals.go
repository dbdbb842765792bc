package cart

import (
	"github.com/shopspring/decimal"

	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
)

// Count sums the quantities across the cart mapping.
func Count(items dbtypes.CartItems) int {
	total := 0
	for _, qty := range items {
		if qty > 0 {
			total += qty
		}
	}
	return total
}

// Amount totals offer prices for the cart. Product ids missing from the
// lookup contribute nothing; the result is truncated to two decimals so a
// cart of 19.999-priced items never rounds up.
func Amount(items dbtypes.CartItems, offerPrices map[string]decimal.Decimal) float64 {
	total := decimal.Zero
	for id, qty := range items {
		if qty <= 0 {
			continue
		}
		price, ok := offerPrices[id]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	truncated, _ := total.Truncate(2).Float64()
	return truncated
}
