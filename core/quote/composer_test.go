package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/session"
	"sundae-pricing/internal/errors"
)

func proConfig() session.Configuration {
	return session.Configuration{
		Layer:     catalog.LayerCore,
		Tier:      "pro",
		Locations: 5,
		Modules:   []string{"labor"},
		Watchtower: []string{
			"bundle",
		},
		ClientProfile: session.ClientProfile{
			Type:           "growth",
			IsEarlyAdopter: true,
			BrandCount:     1,
		},
	}
}

func TestCompose_FullConfiguration(t *testing.T) {
	cat := catalog.Default()

	result, err := Compose(cat, proConfig())
	require.NoError(t, err)

	// tier 515 + labor 139 + bundle 1048
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(1702)), "subtotal %s", result.Subtotal)

	// 1702 x 0.9 x 0.8
	assert.True(t, result.Total.Equal(decimal.RequireFromString("1225.44")), "total %s", result.Total)

	assert.True(t, result.AnnualTotal.Equal(decimal.RequireFromString("14705.28")), "annual %s", result.AnnualTotal)

	require.False(t, result.PerLocation.IsCustom())
	assert.True(t, result.PerLocation.Amount.Equal(decimal.RequireFromString("245.09")),
		"per location %s", result.PerLocation)
}

func TestCompose_IsIdempotent(t *testing.T) {
	cat := catalog.Default()
	cfg := proConfig()

	first, err := Compose(cat, cfg)
	require.NoError(t, err)
	second, err := Compose(cat, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompose_SubtotalMinusDiscountsEqualsTotal(t *testing.T) {
	cat := catalog.Default()

	result, err := Compose(cat, proConfig())
	require.NoError(t, err)

	applied := decimal.Zero
	for _, line := range result.DiscountsApplied {
		applied = applied.Add(line.Amount.Abs())
	}

	diff := result.Subtotal.Sub(applied).Sub(result.Total).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.01")), "diff %s", diff)
}

func TestCompose_AICreditsIncludeEarlyAdopterBonus(t *testing.T) {
	cat := catalog.Default()

	result, err := Compose(cat, proConfig())
	require.NoError(t, err)

	// tier: 500 + 4x100; early adopter bonus: 500. Modules and watchtower
	// never grant credits.
	assert.Equal(t, 1400, result.AICreditsTotal)
	assert.Equal(t, 5, result.AISeatsTotal)

	cfg := proConfig()
	cfg.ClientProfile.IsEarlyAdopter = false
	result, err = Compose(cat, cfg)
	require.NoError(t, err)
	assert.Equal(t, 900, result.AICreditsTotal)
}

func TestCompose_BundleIsOneBreakdownLine(t *testing.T) {
	cat := catalog.Default()

	cfg := proConfig()
	cfg.Watchtower = []string{"competitive", "events", "trends"}

	result, err := Compose(cat, cfg)
	require.NoError(t, err)

	// tier + labor + consolidated bundle line
	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "Watchtower Bundle", result.Breakdown[2].Item)
}

func TestCompose_CustomWatchtowerStaysOutOfSubtotal(t *testing.T) {
	cat := catalog.Default()

	cfg := session.Configuration{
		Layer:      catalog.LayerCore,
		Tier:       "pro",
		Locations:  400,
		Watchtower: []string{"bundle"},
		ClientProfile: session.ClientProfile{
			Type:       "enterprise",
			BrandCount: 1,
		},
	}

	result, err := Compose(cat, cfg)
	require.NoError(t, err)

	// tier only: 199 + 399x79
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(31720)), "subtotal %s", result.Subtotal)

	last := result.Breakdown[len(result.Breakdown)-1]
	assert.True(t, last.Price.IsCustom())
}

func TestCompose_InvalidLocationsIsAnInputError(t *testing.T) {
	cat := catalog.Default()

	cfg := proConfig()
	cfg.Locations = 0

	_, err := Compose(cat, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestCompose_UnknownModulePropagates(t *testing.T) {
	cat := catalog.Default()

	cfg := proConfig()
	cfg.Modules = []string{"labor", "timetravel"}

	_, err := Compose(cat, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}
