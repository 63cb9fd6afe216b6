package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundae-pricing/core/catalog"
)

func TestEnterpriseOrg_FortyLocations(t *testing.T) {
	cat := catalog.Default()

	price := EnterpriseOrg(cat, 40)

	// 2500 + 10x99 + 20x79 + 10x59
	assert.True(t, price.Equal(decimal.NewFromInt(5660)), "got %s", price)
}

func TestEnterpriseOrg_BandsConsumeGreedily(t *testing.T) {
	cat := catalog.Default()

	// exactly the first band: 2500 + 10x99
	assert.True(t, EnterpriseOrg(cat, 10).Equal(decimal.NewFromInt(3490)))

	// one location into the second band
	assert.True(t, EnterpriseOrg(cat, 11).Equal(decimal.NewFromInt(3569)))

	// deep into the open final band: 2500 + 10x99 + 20x79 + 70x59 + 50x45
	assert.True(t, EnterpriseOrg(cat, 150).Equal(decimal.NewFromInt(11450)))
}

func TestConsumeBands_EmptyInputs(t *testing.T) {
	assert.True(t, ConsumeBands(0, catalog.Default().OrgLicense.Bands).IsZero())
	assert.True(t, ConsumeBands(10, nil).IsZero())
}

func TestEnterpriseVolume_TierSelection(t *testing.T) {
	cat := catalog.Default()

	price := EnterpriseVolume(cat, 40)
	require.False(t, price.IsCustom())
	assert.True(t, price.Amount.Equal(decimal.NewFromInt(4500)), "got %s", price)

	price = EnterpriseVolume(cat, 100)
	require.False(t, price.IsCustom())
	assert.True(t, price.Amount.Equal(decimal.NewFromInt(8000)), "got %s", price)
}

func TestEnterpriseVolume_OpenTierIsCustom(t *testing.T) {
	cat := catalog.Default()

	price := EnterpriseVolume(cat, 300)
	assert.True(t, price.IsCustom())
	assert.NotEmpty(t, price.Note)
}

func TestRecommendEnterpriseModel_MultiBrandForcesOrgLicense(t *testing.T) {
	cat := catalog.Default()

	// at 40 locations volume (4500) is cheaper than org (5660), but two
	// brands require org-wide licensing regardless
	rec := RecommendEnterpriseModel(cat, 40, 2)
	assert.Equal(t, ModelOrgLicense, rec.Model)
}

func TestRecommendEnterpriseModel_PicksCheaper(t *testing.T) {
	cat := catalog.Default()

	rec := RecommendEnterpriseModel(cat, 40, 1)
	assert.Equal(t, ModelVolume, rec.Model)

	// at 250 locations: volume 15000, org = 2500 + 990 + 1580 + 4130 + 6750 = 15950
	rec = RecommendEnterpriseModel(cat, 250, 1)
	assert.Equal(t, ModelVolume, rec.Model)
}

func TestRecommendEnterpriseModel_CustomVolumeFallsBackToOrg(t *testing.T) {
	cat := catalog.Default()

	rec := RecommendEnterpriseModel(cat, 300, 1)
	assert.Equal(t, ModelOrgLicense, rec.Model)
	assert.True(t, rec.Volume.IsCustom())
	assert.False(t, rec.OrgLicense.IsCustom())
}
