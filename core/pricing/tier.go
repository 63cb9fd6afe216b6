package pricing

import (
	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
)

// TierQuote is the priced base tier for a location count
type TierQuote struct {
	Price     decimal.Decimal `json:"price"`
	AICredits int             `json:"ai_credits"`
	AISeats   int             `json:"ai_seats"`
}

// TierPrice prices a product tier for a location count. The base price
// covers the first location; every further location bills at the tier's
// additional-location rate. AI seats are a fixed per-tier grant, never
// scaled by location count.
//
// Callers are responsible for locations >= 1.
func TierPrice(cat *catalog.Catalog, layer catalog.Layer, tierID string, locations int) (TierQuote, error) {
	tier, err := cat.Tier(layer, tierID)
	if err != nil {
		return TierQuote{}, err
	}

	extra := additionalLocations(locations, 1)
	price := tier.BasePrice.Add(tier.AdditionalLocationPrice.Mul(decimal.NewFromInt(extra)))
	credits := tier.AICredits.Base + int(extra)*tier.AICredits.PerLocation

	return TierQuote{
		Price:     price,
		AICredits: credits,
		AISeats:   tier.AISeats,
	}, nil
}

// ReportPrice prices a Report-layer tier
func ReportPrice(cat *catalog.Catalog, tierID string, locations int) (TierQuote, error) {
	return TierPrice(cat, catalog.LayerReport, tierID, locations)
}

// CorePrice prices a Core-layer tier
func CorePrice(cat *catalog.Catalog, tierID string, locations int) (TierQuote, error) {
	return TierPrice(cat, catalog.LayerCore, tierID, locations)
}
