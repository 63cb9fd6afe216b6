package pricing

import (
	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
)

// ConsumeBands computes a graduated-rate total: bands are consumed greedily
// from lowest to highest, each covering its own slice of the location count
// at its own rate, until every location is accounted for. An open-ended
// final band absorbs the remainder.
func ConsumeBands(locations int, bands []catalog.RateBand) decimal.Decimal {
	if locations <= 0 || len(bands) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := int64(locations)

	for _, band := range bands {
		if remaining <= 0 {
			break
		}

		var inBand int64
		if band.Range.Last == 0 {
			inBand = remaining
		} else {
			size := int64(band.Range.Last - band.Range.First + 1)
			inBand = min(remaining, size)
		}

		total = total.Add(band.Rate.Mul(decimal.NewFromInt(inBand)))
		remaining -= inBand
	}

	return total
}
