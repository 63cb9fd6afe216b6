// Package catalog holds the versioned pricing reference data.
// A Catalog is immutable for the lifetime of a pricing epoch: calculators
// only ever read from it, and lookups of unknown ids fail loudly.
package catalog

import (
	"github.com/shopspring/decimal"

	"sundae-pricing/internal/errors"
)

// Layer identifies the top-level product line
type Layer string

const (
	LayerReport Layer = "report"
	LayerCore   Layer = "core"
)

// PricingModel selects how a client segment is priced
type PricingModel string

const (
	ModelStandard   PricingModel = "standard"
	ModelGrowth     PricingModel = "growth"
	ModelEnterprise PricingModel = "enterprise"
)

// LocationRange is an inclusive range of location counts.
// Last == 0 means the range is open-ended.
type LocationRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Contains reports whether n falls inside the range
func (r LocationRange) Contains(n int) bool {
	if n < r.First {
		return false
	}
	return r.Last == 0 || n <= r.Last
}

// AICreditGrant describes the AI credits granted by a tier
type AICreditGrant struct {
	Base        int `json:"base"`
	PerLocation int `json:"per_location"`
}

// TierDefinition prices one (layer, tier) pair.
// The first location is always covered by the base price.
type TierDefinition struct {
	ID                      string          `json:"id"`
	Layer                   Layer           `json:"layer"`
	Name                    string          `json:"name"`
	BasePrice               decimal.Decimal `json:"base_price"`
	AdditionalLocationPrice decimal.Decimal `json:"additional_location_price"`
	AICredits               AICreditGrant   `json:"ai_credits"`
	AISeats                 int             `json:"ai_seats"`
	Features                []string        `json:"features"`
}

// ModuleDefinition prices a Core add-on module.
// Every module includes the first ModuleIncludedLocations locations in its
// org-license price.
type ModuleDefinition struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	OrgLicensePrice   decimal.Decimal `json:"org_license_price"`
	PerLocationPrice  decimal.Decimal `json:"per_location_price"`
	IncludedLocations int             `json:"included_locations"`
}

// WatchtowerModuleDefinition prices one individually-sold watchtower module
type WatchtowerModuleDefinition struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	BasePrice         decimal.Decimal `json:"base_price"`
	PerLocationPrice  decimal.Decimal `json:"per_location_price"`
	IncludedLocations int             `json:"included_locations"`
}

// WatchtowerBundleDefinition prices the discounted three-module bundle.
// BaseSavings and SavingsPercent are derived from the individual module
// prices and must reconcile with them (see Catalog.Validate).
type WatchtowerBundleDefinition struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	BasePrice        decimal.Decimal `json:"base_price"`
	PerLocationPrice decimal.Decimal `json:"per_location_price"`
	Includes         []string        `json:"includes"`
	BaseSavings      decimal.Decimal `json:"base_savings"`
	SavingsPercent   decimal.Decimal `json:"savings_percent"`
}

// WatchtowerEnterpriseTier holds the flat watchtower rates for one
// enterprise location band. Prices are flat per tier, not per location.
type WatchtowerEnterpriseTier struct {
	Range        LocationRange              `json:"range"`
	ModulePrices map[string]decimal.Decimal `json:"module_prices"`
	BundlePrice  decimal.Decimal            `json:"bundle_price"`
}

// ClientTypeRule maps a client segment to its discount and pricing model
type ClientTypeRule struct {
	Type         string          `json:"type"`
	Label        string          `json:"label"`
	Range        LocationRange   `json:"range"`
	DiscountTier decimal.Decimal `json:"discount_tier"`
	PricingModel PricingModel    `json:"pricing_model"`
}

// EarlyAdopterTerms describes the early-adopter program
type EarlyAdopterTerms struct {
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	BonusCredits      int             `json:"bonus_credits"`
	PriceLockMonths   int             `json:"price_lock_months"`
	ExtendedTrialDays int             `json:"extended_trial_days"`
}

// EnterpriseVolumeTier maps a location range to a flat monthly fee.
// Custom marks the open-ended final tier that has no published fee.
type EnterpriseVolumeTier struct {
	Range   LocationRange   `json:"range"`
	Monthly decimal.Decimal `json:"monthly"`
	Custom  bool            `json:"custom"`
}

// RateBand covers a fixed range of locations at its own per-location rate.
// Bands are consumed greedily from lowest to highest.
type RateBand struct {
	Range LocationRange   `json:"range"`
	Rate  decimal.Decimal `json:"rate"`
}

// EnterpriseOrgLicense is the banded org-license pricing model
type EnterpriseOrgLicense struct {
	BaseFee decimal.Decimal `json:"base_fee"`
	Bands   []RateBand      `json:"bands"`
}

// Catalog is one pricing epoch's complete reference data
type Catalog struct {
	Epoch string `json:"epoch"`

	Tiers             []TierDefinition             `json:"tiers"`
	Modules           []ModuleDefinition           `json:"modules"`
	WatchtowerModules []WatchtowerModuleDefinition `json:"watchtower_modules"`
	WatchtowerBundle  WatchtowerBundleDefinition   `json:"watchtower_bundle"`
	WatchtowerTiers   []WatchtowerEnterpriseTier   `json:"watchtower_enterprise_tiers"`
	ClientTypes       []ClientTypeRule             `json:"client_types"`
	EarlyAdopter      EarlyAdopterTerms            `json:"early_adopter"`
	VolumeTiers       []EnterpriseVolumeTier       `json:"enterprise_volume_tiers"`
	OrgLicense        EnterpriseOrgLicense         `json:"enterprise_org_license"`
}

// Tier looks up a tier definition by layer and id
func (c *Catalog) Tier(layer Layer, id string) (TierDefinition, error) {
	for _, t := range c.Tiers {
		if t.Layer == layer && t.ID == id {
			return t, nil
		}
	}
	return TierDefinition{}, errors.UnknownCatalogID("tier", string(layer)+"/"+id)
}

// Module looks up a module definition by id
func (c *Catalog) Module(id string) (ModuleDefinition, error) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, nil
		}
	}
	return ModuleDefinition{}, errors.UnknownCatalogID("module", id)
}

// WatchtowerModule looks up an individual watchtower module by id
func (c *Catalog) WatchtowerModule(id string) (WatchtowerModuleDefinition, error) {
	for _, m := range c.WatchtowerModules {
		if m.ID == id {
			return m, nil
		}
	}
	return WatchtowerModuleDefinition{}, errors.UnknownCatalogID("watchtower module", id)
}

// ClientType looks up the discount rule for a client segment
func (c *Catalog) ClientType(clientType string) (ClientTypeRule, error) {
	for _, r := range c.ClientTypes {
		if r.Type == clientType {
			return r, nil
		}
	}
	return ClientTypeRule{}, errors.UnknownCatalogID("client type", clientType)
}

// WatchtowerTier returns the enterprise watchtower rate tier covering n
// locations. The second return is false when n exceeds the highest defined
// bound, which callers must surface as custom pricing.
func (c *Catalog) WatchtowerTier(locations int) (WatchtowerEnterpriseTier, bool) {
	for _, t := range c.WatchtowerTiers {
		if t.Range.Contains(locations) {
			return t, true
		}
	}
	return WatchtowerEnterpriseTier{}, false
}

// Validate checks catalog integrity. Derived values (bundle savings) must
// reconcile with the data they were derived from; a catalog that fails here
// must never be used for pricing.
func (c *Catalog) Validate() error {
	if len(c.WatchtowerBundle.Includes) != 3 {
		return errors.CatalogIntegrity("watchtower bundle must include exactly 3 modules")
	}

	sumBase := decimal.Zero
	for _, id := range c.WatchtowerBundle.Includes {
		m, err := c.WatchtowerModule(id)
		if err != nil {
			return err
		}
		sumBase = sumBase.Add(m.BasePrice)
	}

	savings := sumBase.Sub(c.WatchtowerBundle.BasePrice)
	if savings.IsNegative() {
		return errors.CatalogIntegrity("watchtower bundle is more expensive than its modules")
	}
	if !savings.Equal(c.WatchtowerBundle.BaseSavings) {
		return errors.CatalogIntegrity("watchtower bundle base_savings does not reconcile with module prices")
	}

	for _, m := range c.Modules {
		if m.IncludedLocations != ModuleIncludedLocations {
			return errors.CatalogIntegrity("module " + m.ID + " has a non-standard included location count")
		}
	}

	for _, t := range c.WatchtowerTiers {
		sum := decimal.Zero
		for _, id := range c.WatchtowerBundle.Includes {
			p, ok := t.ModulePrices[id]
			if !ok {
				return errors.CatalogIntegrity("enterprise watchtower tier is missing a price for " + id)
			}
			sum = sum.Add(p)
		}
		if t.BundlePrice.GreaterThan(sum) {
			return errors.CatalogIntegrity("enterprise watchtower bundle price exceeds the sum of module prices")
		}
	}

	prev := 0
	for i, b := range c.OrgLicense.Bands {
		if b.Range.First != prev+1 {
			return errors.CatalogIntegrity("org-license bands must be contiguous from location 1")
		}
		if b.Range.Last == 0 {
			if i != len(c.OrgLicense.Bands)-1 {
				return errors.CatalogIntegrity("org-license open band must be the final band")
			}
			break
		}
		prev = b.Range.Last
	}

	return nil
}
