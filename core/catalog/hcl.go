package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"sundae-pricing/internal/errors"
)

// An epoch file replaces the built-in catalog wholesale. Partial overrides
// are not supported: a pricing epoch is a single consistent snapshot, and a
// merged catalog would defeat the reconciliation checks in Validate.

type epochFile struct {
	Epoch string `hcl:"epoch"`

	Tiers             []tierBlock       `hcl:"tier,block"`
	Modules           []moduleBlock     `hcl:"module,block"`
	WatchtowerModules []wtModuleBlock   `hcl:"watchtower_module,block"`
	WatchtowerBundle  wtBundleBlock     `hcl:"watchtower_bundle,block"`
	WatchtowerTiers   []wtTierBlock     `hcl:"watchtower_tier,block"`
	ClientTypes       []clientTypeBlock `hcl:"client_type,block"`
	EarlyAdopter      earlyAdopterBlock `hcl:"early_adopter,block"`
	VolumeTiers       []volumeTierBlock `hcl:"volume_tier,block"`
	OrgLicense        orgLicenseBlock   `hcl:"org_license,block"`
}

type tierBlock struct {
	Layer                   string   `hcl:"layer,label"`
	ID                      string   `hcl:"id,label"`
	Name                    string   `hcl:"name"`
	BasePrice               float64  `hcl:"base_price"`
	AdditionalLocationPrice float64  `hcl:"additional_location_price"`
	AICreditsBase           int      `hcl:"ai_credits_base"`
	AICreditsPerLocation    int      `hcl:"ai_credits_per_location"`
	AISeats                 int      `hcl:"ai_seats"`
	Features                []string `hcl:"features,optional"`
}

type moduleBlock struct {
	ID               string  `hcl:"id,label"`
	Name             string  `hcl:"name"`
	OrgLicensePrice  float64 `hcl:"org_license_price"`
	PerLocationPrice float64 `hcl:"per_location_price"`
}

type wtModuleBlock struct {
	ID               string  `hcl:"id,label"`
	Name             string  `hcl:"name"`
	BasePrice        float64 `hcl:"base_price"`
	PerLocationPrice float64 `hcl:"per_location_price"`
}

type wtBundleBlock struct {
	Name             string   `hcl:"name"`
	BasePrice        float64  `hcl:"base_price"`
	PerLocationPrice float64  `hcl:"per_location_price"`
	Includes         []string `hcl:"includes"`
	BaseSavings      float64  `hcl:"base_savings"`
	SavingsPercent   float64  `hcl:"savings_percent"`
}

type wtTierBlock struct {
	First        int                `hcl:"first"`
	Last         int                `hcl:"last,optional"`
	ModulePrices map[string]float64 `hcl:"module_prices"`
	BundlePrice  float64            `hcl:"bundle_price"`
}

type clientTypeBlock struct {
	Type         string  `hcl:"type,label"`
	Label        string  `hcl:"display_label"`
	First        int     `hcl:"first"`
	Last         int     `hcl:"last,optional"`
	DiscountTier float64 `hcl:"discount_tier"`
	PricingModel string  `hcl:"pricing_model"`
}

type earlyAdopterBlock struct {
	DiscountPercent   float64 `hcl:"discount_percent"`
	BonusCredits      int     `hcl:"bonus_credits"`
	PriceLockMonths   int     `hcl:"price_lock_months"`
	ExtendedTrialDays int     `hcl:"extended_trial_days"`
}

type volumeTierBlock struct {
	First   int     `hcl:"first"`
	Last    int     `hcl:"last,optional"`
	Monthly float64 `hcl:"monthly,optional"`
	Custom  bool    `hcl:"custom,optional"`
}

type orgLicenseBlock struct {
	BaseFee float64     `hcl:"base_fee"`
	Bands   []bandBlock `hcl:"band,block"`
}

type bandBlock struct {
	First int     `hcl:"first"`
	Last  int     `hcl:"last,optional"`
	Rate  float64 `hcl:"rate"`
}

// LoadEpochFile parses an HCL pricing-epoch file and returns the catalog it
// defines. The result has already passed Validate.
func LoadEpochFile(path string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Config("failed to parse epoch file", diags)
	}
	return decodeEpoch(file.Body)
}

func decodeEpoch(body hcl.Body) (*Catalog, error) {
	var ef epochFile
	if diags := gohcl.DecodeBody(body, nil, &ef); diags.HasErrors() {
		return nil, errors.Config("failed to decode epoch file", diags)
	}

	cat := &Catalog{Epoch: ef.Epoch}

	for _, t := range ef.Tiers {
		layer := Layer(t.Layer)
		if layer != LayerReport && layer != LayerCore {
			return nil, errors.Newf(errors.TypeConfig, "unknown layer %q in epoch file", t.Layer)
		}
		cat.Tiers = append(cat.Tiers, TierDefinition{
			ID:                      t.ID,
			Layer:                   layer,
			Name:                    t.Name,
			BasePrice:               decimal.NewFromFloat(t.BasePrice),
			AdditionalLocationPrice: decimal.NewFromFloat(t.AdditionalLocationPrice),
			AICredits:               AICreditGrant{Base: t.AICreditsBase, PerLocation: t.AICreditsPerLocation},
			AISeats:                 t.AISeats,
			Features:                t.Features,
		})
	}

	for _, m := range ef.Modules {
		cat.Modules = append(cat.Modules, ModuleDefinition{
			ID:                m.ID,
			Name:              m.Name,
			OrgLicensePrice:   decimal.NewFromFloat(m.OrgLicensePrice),
			PerLocationPrice:  decimal.NewFromFloat(m.PerLocationPrice),
			IncludedLocations: ModuleIncludedLocations,
		})
	}

	for _, m := range ef.WatchtowerModules {
		cat.WatchtowerModules = append(cat.WatchtowerModules, WatchtowerModuleDefinition{
			ID:                m.ID,
			Name:              m.Name,
			BasePrice:         decimal.NewFromFloat(m.BasePrice),
			PerLocationPrice:  decimal.NewFromFloat(m.PerLocationPrice),
			IncludedLocations: WatchtowerIncludedLocations,
		})
	}

	cat.WatchtowerBundle = WatchtowerBundleDefinition{
		ID:               WatchtowerBundleID,
		Name:             ef.WatchtowerBundle.Name,
		BasePrice:        decimal.NewFromFloat(ef.WatchtowerBundle.BasePrice),
		PerLocationPrice: decimal.NewFromFloat(ef.WatchtowerBundle.PerLocationPrice),
		Includes:         ef.WatchtowerBundle.Includes,
		BaseSavings:      decimal.NewFromFloat(ef.WatchtowerBundle.BaseSavings),
		SavingsPercent:   decimal.NewFromFloat(ef.WatchtowerBundle.SavingsPercent),
	}

	for _, t := range ef.WatchtowerTiers {
		prices := make(map[string]decimal.Decimal, len(t.ModulePrices))
		for id, p := range t.ModulePrices {
			prices[id] = decimal.NewFromFloat(p)
		}
		cat.WatchtowerTiers = append(cat.WatchtowerTiers, WatchtowerEnterpriseTier{
			Range:        LocationRange{First: t.First, Last: t.Last},
			ModulePrices: prices,
			BundlePrice:  decimal.NewFromFloat(t.BundlePrice),
		})
	}

	for _, r := range ef.ClientTypes {
		model := PricingModel(r.PricingModel)
		switch model {
		case ModelStandard, ModelGrowth, ModelEnterprise:
		default:
			return nil, errors.Newf(errors.TypeConfig, "unknown pricing model %q in epoch file", r.PricingModel)
		}
		cat.ClientTypes = append(cat.ClientTypes, ClientTypeRule{
			Type:         r.Type,
			Label:        r.Label,
			Range:        LocationRange{First: r.First, Last: r.Last},
			DiscountTier: decimal.NewFromFloat(r.DiscountTier),
			PricingModel: model,
		})
	}

	cat.EarlyAdopter = EarlyAdopterTerms{
		DiscountPercent:   decimal.NewFromFloat(ef.EarlyAdopter.DiscountPercent),
		BonusCredits:      ef.EarlyAdopter.BonusCredits,
		PriceLockMonths:   ef.EarlyAdopter.PriceLockMonths,
		ExtendedTrialDays: ef.EarlyAdopter.ExtendedTrialDays,
	}

	for _, t := range ef.VolumeTiers {
		cat.VolumeTiers = append(cat.VolumeTiers, EnterpriseVolumeTier{
			Range:   LocationRange{First: t.First, Last: t.Last},
			Monthly: decimal.NewFromFloat(t.Monthly),
			Custom:  t.Custom,
		})
	}

	cat.OrgLicense = EnterpriseOrgLicense{BaseFee: decimal.NewFromFloat(ef.OrgLicense.BaseFee)}
	for _, b := range ef.OrgLicense.Bands {
		cat.OrgLicense.Bands = append(cat.OrgLicense.Bands, RateBand{
			Range: LocationRange{First: b.First, Last: b.Last},
			Rate:  decimal.NewFromFloat(b.Rate),
		})
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
