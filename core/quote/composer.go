// Package quote composes individual calculator outputs into one complete
// priced quote. Composition is pure aggregation: the output is fully
// determined by the catalog and the configuration.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/pricing"
	"sundae-pricing/core/session"
)

// monthsPerYear for annual projection
const monthsPerYear = 12

// PriceResult is the complete priced breakdown for one configuration
type PriceResult struct {
	Subtotal         decimal.Decimal        `json:"subtotal"`
	DiscountsApplied []pricing.DiscountLine `json:"discounts_applied"`
	Total            decimal.Decimal        `json:"total"`
	PerLocation      pricing.Price          `json:"per_location"`
	AnnualTotal      decimal.Decimal        `json:"annual_total"`
	AICreditsTotal   int                    `json:"ai_credits_total"`
	AISeatsTotal     int                    `json:"ai_seats_total"`
	Breakdown        []pricing.LineItem     `json:"breakdown"`
}

// Compose prices a full configuration: tier plus modules plus watchtower,
// then the discount stack. A watchtower custom-pricing sentinel stays in
// the breakdown as its own line and is excluded from the numeric subtotal.
func Compose(cat *catalog.Catalog, cfg session.Configuration) (PriceResult, error) {
	if err := cfg.Validate(); err != nil {
		return PriceResult{}, err
	}

	tier, err := pricing.TierPrice(cat, cfg.Layer, cfg.Tier, cfg.Locations)
	if err != nil {
		return PriceResult{}, err
	}

	tierDef, err := cat.Tier(cfg.Layer, cfg.Tier)
	if err != nil {
		return PriceResult{}, err
	}

	subtotal := tier.Price
	breakdown := []pricing.LineItem{{
		Item:  tierDef.Name,
		Price: pricing.PriceOf(tier.Price),
		Note:  fmt.Sprintf("%d locations", cfg.Locations),
	}}

	for _, id := range cfg.Modules {
		mod, err := cat.Module(id)
		if err != nil {
			return PriceResult{}, err
		}
		price, err := pricing.ModulePrice(cat, id, cfg.Locations)
		if err != nil {
			return PriceResult{}, err
		}
		subtotal = subtotal.Add(price)
		breakdown = append(breakdown, pricing.LineItem{Item: mod.Name, Price: pricing.PriceOf(price)})
	}

	watch, err := pricing.WatchtowerPrice(cat, cfg.Watchtower, cfg.Locations)
	if err != nil {
		return PriceResult{}, err
	}
	if !watch.Price.IsCustom() {
		subtotal = subtotal.Add(watch.Price.Amount)
	}
	breakdown = append(breakdown, watch.Items...)

	discounted, err := pricing.ApplyDiscounts(cat, subtotal, cfg.ClientProfile)
	if err != nil {
		return PriceResult{}, err
	}

	credits := tier.AICredits
	if cfg.ClientProfile.IsEarlyAdopter {
		credits += cat.EarlyAdopter.BonusCredits
	}

	return PriceResult{
		Subtotal:         subtotal,
		DiscountsApplied: discounted.Discounts,
		Total:            discounted.Total,
		PerLocation:      perLocation(discounted.Total, cfg.Locations),
		AnnualTotal:      discounted.Total.Mul(decimal.NewFromInt(monthsPerYear)),
		AICreditsTotal:   credits,
		AISeatsTotal:     tier.AISeats,
		Breakdown:        breakdown,
	}, nil
}

// perLocation guards the division: a non-positive location count yields the
// sentinel, never Inf or NaN.
func perLocation(total decimal.Decimal, locations int) pricing.Price {
	if locations < 1 {
		return pricing.CustomPrice("per-location price unavailable without locations")
	}
	return pricing.PriceOf(total.Div(decimal.NewFromInt(int64(locations))).Round(2))
}
