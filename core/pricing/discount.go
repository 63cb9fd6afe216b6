package pricing

import (
	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/session"
)

// DiscountLine is one applied discount, for receipt transparency.
// Amount is negative.
type DiscountLine struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// DiscountResult is the discounted total with its applied chain
type DiscountResult struct {
	Total     decimal.Decimal `json:"total"`
	Discounts []DiscountLine  `json:"discounts"`
}

// ApplyDiscounts applies the ordered discount stack to a subtotal. Each
// step's percentage compounds on the running total, never on the original
// subtotal:
//
//  1. client-type discount, skipped entirely for enterprise pricing models
//  2. early-adopter discount
//  3. custom negotiated discount
//
// Rounding to 2 decimal places happens once, on the final total.
func ApplyDiscounts(cat *catalog.Catalog, subtotal decimal.Decimal, profile session.ClientProfile) (DiscountResult, error) {
	rule, err := cat.ClientType(profile.Type)
	if err != nil {
		return DiscountResult{}, err
	}

	running := subtotal
	var lines []DiscountLine

	step := func(name string, percent decimal.Decimal) {
		if percent.IsZero() {
			return
		}
		next := running.Mul(percentFactor(percent))
		lines = append(lines, DiscountLine{
			Name:    name,
			Amount:  next.Sub(running),
			Percent: percent,
		})
		running = next
	}

	// Enterprise clients are priced by the volume/org-license models; the
	// client-type percentage never applies to them, whatever its nominal
	// value.
	if rule.PricingModel != catalog.ModelEnterprise {
		step(rule.Label+" discount", rule.DiscountTier)
	}

	if profile.IsEarlyAdopter {
		step("Early adopter discount", cat.EarlyAdopter.DiscountPercent)
	}

	if profile.CustomDiscountPercent != nil {
		step("Negotiated discount", decimal.NewFromFloat(*profile.CustomDiscountPercent))
	}

	return DiscountResult{Total: running.Round(2), Discounts: lines}, nil
}
