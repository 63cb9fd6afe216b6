package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
)

// Enterprise model identifiers
const (
	ModelVolume     = "volume"
	ModelOrgLicense = "org_license"
)

// EnterpriseRecommendation compares both enterprise pricing models
type EnterpriseRecommendation struct {
	Model      string `json:"model"`
	Volume     Price  `json:"volume"`
	OrgLicense Price  `json:"org_license"`
	Reason     string `json:"reason"`
}

// EnterpriseVolume prices the flat volume model: a monthly fee selected
// from the volume tier table by inclusion test. The open-ended final tier
// has no published fee and returns the custom sentinel, as does a location
// count below every defined tier.
func EnterpriseVolume(cat *catalog.Catalog, locations int) Price {
	for _, tier := range cat.VolumeTiers {
		if !tier.Range.Contains(locations) {
			continue
		}
		if tier.Custom {
			return CustomPrice(fmt.Sprintf("custom pricing above %d locations, contact sales", tier.Range.First-1))
		}
		return PriceOf(tier.Monthly)
	}
	return CustomPrice(fmt.Sprintf("no volume tier covers %d locations", locations))
}

// EnterpriseOrg prices the banded org-license model: a base fee plus each
// band's slice of the location count at that band's rate.
func EnterpriseOrg(cat *catalog.Catalog, locations int) decimal.Decimal {
	return cat.OrgLicense.BaseFee.Add(ConsumeBands(locations, cat.OrgLicense.Bands))
}

// RecommendEnterpriseModel picks between the two enterprise models.
// Multi-brand operators always need org-wide licensing, regardless of
// relative cost. Otherwise the cheaper numeric result wins, with a custom
// volume result disqualifying the volume model.
func RecommendEnterpriseModel(cat *catalog.Catalog, locations, brandCount int) EnterpriseRecommendation {
	volume := EnterpriseVolume(cat, locations)
	org := PriceOf(EnterpriseOrg(cat, locations))

	rec := EnterpriseRecommendation{Volume: volume, OrgLicense: org}

	switch {
	case brandCount > 1:
		rec.Model = ModelOrgLicense
		rec.Reason = fmt.Sprintf("%d brands require an org-wide license", brandCount)
	case volume.IsCustom():
		rec.Model = ModelOrgLicense
		rec.Reason = "volume pricing is not published at this scale"
	case volume.Amount.LessThanOrEqual(org.Amount):
		rec.Model = ModelVolume
		rec.Reason = fmt.Sprintf("volume tier (%s) beats org license (%s)", volume, org)
	default:
		rec.Model = ModelOrgLicense
		rec.Reason = fmt.Sprintf("org license (%s) beats volume tier (%s)", org, volume)
	}

	return rec
}
