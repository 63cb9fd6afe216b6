package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/session"
	"sundae-pricing/internal/errors"
)

func TestApplyDiscounts_CompoundsMultiplicatively(t *testing.T) {
	cat := catalog.Default()

	result, err := ApplyDiscounts(cat, decimal.NewFromInt(1000), session.ClientProfile{
		Type:           "growth",
		IsEarlyAdopter: true,
	})
	require.NoError(t, err)

	// 1000 x 0.9 x 0.8, never 1000 x (1 - 0.30)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(720)), "got %s", result.Total)

	require.Len(t, result.Discounts, 2)
	assert.True(t, result.Discounts[0].Amount.Equal(decimal.NewFromInt(-100)), "got %s", result.Discounts[0].Amount)
	assert.True(t, result.Discounts[1].Amount.Equal(decimal.NewFromInt(-180)),
		"early-adopter percentage must apply to the running total, got %s", result.Discounts[1].Amount)
}

func TestApplyDiscounts_OrderIsClientTypeThenEarlyThenNegotiated(t *testing.T) {
	cat := catalog.Default()

	custom := 5.0
	result, err := ApplyDiscounts(cat, decimal.NewFromInt(1000), session.ClientProfile{
		Type:                  "growth",
		IsEarlyAdopter:        true,
		CustomDiscountPercent: &custom,
	})
	require.NoError(t, err)

	// 1000 x 0.9 x 0.8 x 0.95
	assert.True(t, result.Total.Equal(decimal.NewFromInt(684)), "got %s", result.Total)

	require.Len(t, result.Discounts, 3)
	assert.Equal(t, "Growth Group discount", result.Discounts[0].Name)
	assert.Equal(t, "Early adopter discount", result.Discounts[1].Name)
	assert.Equal(t, "Negotiated discount", result.Discounts[2].Name)
}

func TestApplyDiscounts_EnterpriseNeverGetsClientTypeDiscount(t *testing.T) {
	cat := catalog.Default()

	rule, err := cat.ClientType("enterprise")
	require.NoError(t, err)
	require.False(t, rule.DiscountTier.IsZero(), "the rule carries a nominal tier")

	result, err := ApplyDiscounts(cat, decimal.NewFromInt(1000), session.ClientProfile{Type: "enterprise"})
	require.NoError(t, err)

	assert.True(t, result.Total.Equal(decimal.NewFromInt(1000)),
		"nominal enterprise tier must never apply, got %s", result.Total)
	assert.Empty(t, result.Discounts)
}

func TestApplyDiscounts_EnterpriseStillStacksOtherDiscounts(t *testing.T) {
	cat := catalog.Default()

	result, err := ApplyDiscounts(cat, decimal.NewFromInt(1000), session.ClientProfile{
		Type:           "enterprise",
		IsEarlyAdopter: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Total.Equal(decimal.NewFromInt(800)), "got %s", result.Total)
	require.Len(t, result.Discounts, 1)
	assert.Equal(t, "Early adopter discount", result.Discounts[0].Name)
}

func TestApplyDiscounts_ZeroPercentEmitsNoLine(t *testing.T) {
	cat := catalog.Default()

	result, err := ApplyDiscounts(cat, decimal.NewFromInt(500), session.ClientProfile{Type: "independent"})
	require.NoError(t, err)

	assert.True(t, result.Total.Equal(decimal.NewFromInt(500)))
	assert.Empty(t, result.Discounts)
}

func TestApplyDiscounts_TotalReconcilesWithLines(t *testing.T) {
	cat := catalog.Default()

	custom := 7.5
	subtotal := decimal.RequireFromString("1234.56")
	result, err := ApplyDiscounts(cat, subtotal, session.ClientProfile{
		Type:                  "multi-site",
		IsEarlyAdopter:        true,
		CustomDiscountPercent: &custom,
	})
	require.NoError(t, err)

	applied := decimal.Zero
	for _, line := range result.Discounts {
		applied = applied.Add(line.Amount.Abs())
	}

	diff := subtotal.Sub(applied).Sub(result.Total).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.01")),
		"subtotal - discounts must equal total within rounding, diff %s", diff)
}

func TestApplyDiscounts_UnknownClientTypeFailsLoudly(t *testing.T) {
	cat := catalog.Default()

	_, err := ApplyDiscounts(cat, decimal.NewFromInt(100), session.ClientProfile{Type: "galactic"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}
