package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundae-pricing/core/catalog"
	"sundae-pricing/internal/errors"
)

func TestTierPrice_SingleLocationIsBasePrice(t *testing.T) {
	cat := catalog.Default()

	for _, tier := range cat.Tiers {
		quote, err := TierPrice(cat, tier.Layer, tier.ID, 1)
		require.NoError(t, err)
		assert.True(t, quote.Price.Equal(tier.BasePrice),
			"%s/%s at 1 location = %s, want base price %s", tier.Layer, tier.ID, quote.Price, tier.BasePrice)
	}
}

func TestTierPrice_ReportPlusFiveLocations(t *testing.T) {
	cat := catalog.Default()

	quote, err := ReportPrice(cat, "plus", 5)
	require.NoError(t, err)

	// 49 + 4 x 29
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(165)), "got %s", quote.Price)
}

func TestTierPrice_CoreProFiveLocations(t *testing.T) {
	cat := catalog.Default()

	quote, err := CorePrice(cat, "pro", 5)
	require.NoError(t, err)

	// 199 + 4 x 79
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(515)), "got %s", quote.Price)
}

func TestTierPrice_ProAlwaysAboveLite(t *testing.T) {
	cat := catalog.Default()

	for _, n := range []int{1, 2, 5, 10, 29, 50, 100, 500} {
		pro, err := CorePrice(cat, "pro", n)
		require.NoError(t, err)
		lite, err := CorePrice(cat, "lite", n)
		require.NoError(t, err)

		assert.True(t, pro.Price.GreaterThan(lite.Price),
			"pro (%s) must beat lite (%s) at %d locations", pro.Price, lite.Price, n)
	}
}

func TestTierPrice_AICredits(t *testing.T) {
	cat := catalog.Default()

	quote, err := CorePrice(cat, "pro", 5)
	require.NoError(t, err)

	// 500 base + 4 x 100 per additional location
	assert.Equal(t, 900, quote.AICredits)

	// seats never scale with locations
	one, err := CorePrice(cat, "pro", 1)
	require.NoError(t, err)
	assert.Equal(t, one.AISeats, quote.AISeats)
	assert.Equal(t, 5, quote.AISeats)
}

func TestTierPrice_UnknownTierFailsLoudly(t *testing.T) {
	cat := catalog.Default()

	_, err := TierPrice(cat, catalog.LayerCore, "platinum", 3)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}

func TestTierPrice_UnknownLayerTierPairFails(t *testing.T) {
	cat := catalog.Default()

	// "pro" exists, but only under the core layer
	_, err := TierPrice(cat, catalog.LayerReport, "pro", 1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}
