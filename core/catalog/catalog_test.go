package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundae-pricing/internal/errors"
)

func TestDefault_PassesValidation(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_BundleSavingsReconcile(t *testing.T) {
	cat := Default()

	sum := decimal.Zero
	for _, id := range cat.WatchtowerBundle.Includes {
		m, err := cat.WatchtowerModule(id)
		require.NoError(t, err)
		sum = sum.Add(m.BasePrice)
	}

	assert.True(t, sum.Sub(cat.WatchtowerBundle.BasePrice).Equal(cat.WatchtowerBundle.BaseSavings))
}

func TestLookups_UnknownIDsError(t *testing.T) {
	cat := Default()

	_, err := cat.Tier(LayerCore, "nope")
	assert.True(t, errors.IsType(err, errors.TypeCatalog))

	_, err = cat.Module("nope")
	assert.True(t, errors.IsType(err, errors.TypeCatalog))

	_, err = cat.WatchtowerModule("nope")
	assert.True(t, errors.IsType(err, errors.TypeCatalog))

	_, err = cat.ClientType("nope")
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}

func TestLocationRange_OpenUpperBound(t *testing.T) {
	open := LocationRange{First: 30}
	assert.False(t, open.Contains(29))
	assert.True(t, open.Contains(30))
	assert.True(t, open.Contains(100000))

	closed := LocationRange{First: 3, Last: 9}
	assert.True(t, closed.Contains(3))
	assert.True(t, closed.Contains(9))
	assert.False(t, closed.Contains(10))
}

func TestWatchtowerTier_BeyondTableReportsMiss(t *testing.T) {
	cat := Default()

	_, ok := cat.WatchtowerTier(301)
	assert.False(t, ok)

	tier, ok := cat.WatchtowerTier(30)
	require.True(t, ok)
	assert.Equal(t, 30, tier.Range.First)
}

func TestValidate_CatchesBrokenBundleSavings(t *testing.T) {
	cat := Default()
	cat.WatchtowerBundle.BaseSavings = decimal.NewFromInt(999)

	err := cat.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}

func TestValidate_CatchesGappedBands(t *testing.T) {
	cat := Default()
	cat.OrgLicense.Bands[1].Range.First = 12

	err := cat.Validate()
	require.Error(t, err)
}

const epochHCL = `
epoch = "test-epoch"

tier "core" "pro" {
  name                      = "Core Pro"
  base_price                = 199
  additional_location_price = 79
  ai_credits_base           = 500
  ai_credits_per_location   = 100
  ai_seats                  = 5
}

module "labor" {
  name               = "Labor Insights"
  org_license_price  = 139
  per_location_price = 19
}

watchtower_module "competitive" {
  name               = "Competitive Watch"
  base_price         = 349
  per_location_price = 39
}

watchtower_module "events" {
  name               = "Event Watch"
  base_price         = 249
  per_location_price = 29
}

watchtower_module "trends" {
  name               = "Trend Watch"
  base_price         = 249
  per_location_price = 35
}

watchtower_bundle {
  name               = "Watchtower Bundle"
  base_price         = 720
  per_location_price = 82
  includes           = ["competitive", "events", "trends"]
  base_savings       = 127
  savings_percent    = 15
}

watchtower_tier {
  first        = 30
  last         = 75
  module_prices = {
    competitive = 1500
    events      = 1100
    trends      = 1200
  }
  bundle_price = 3300
}

client_type "growth" {
  display_label = "Growth Group"
  first         = 3
  last          = 9
  discount_tier = 10
  pricing_model = "growth"
}

early_adopter {
  discount_percent    = 20
  bonus_credits       = 500
  price_lock_months   = 12
  extended_trial_days = 30
}

volume_tier {
  first   = 30
  last    = 50
  monthly = 4500
}

volume_tier {
  first  = 51
  custom = true
}

org_license {
  base_fee = 2500

  band {
    first = 1
    last  = 10
    rate  = 99
  }

  band {
    first = 11
    rate  = 79
  }
}
`

func TestLoadEpochFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epoch.hcl")
	require.NoError(t, os.WriteFile(path, []byte(epochHCL), 0644))

	cat, err := LoadEpochFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-epoch", cat.Epoch)

	tier, err := cat.Tier(LayerCore, "pro")
	require.NoError(t, err)
	assert.True(t, tier.BasePrice.Equal(decimal.NewFromInt(199)))
	assert.Equal(t, 5, tier.AISeats)

	mod, err := cat.Module("labor")
	require.NoError(t, err)
	assert.Equal(t, ModuleIncludedLocations, mod.IncludedLocations)

	assert.True(t, cat.WatchtowerBundle.BaseSavings.Equal(decimal.NewFromInt(127)))

	rule, err := cat.ClientType("growth")
	require.NoError(t, err)
	assert.Equal(t, ModelGrowth, rule.PricingModel)
}

func TestLoadEpochFile_RejectsBrokenData(t *testing.T) {
	broken := epochHCL + `
watchtower_tier {
  first        = 76
  last         = 150
  module_prices = {
    competitive = 100
    events      = 100
    trends      = 100
  }
  bundle_price = 9999
}
`
	path := filepath.Join(t.TempDir(), "epoch.hcl")
	require.NoError(t, os.WriteFile(path, []byte(broken), 0644))

	_, err := LoadEpochFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
}
