package catalog

import "github.com/shopspring/decimal"

// Structural constants shared by every pricing epoch.
const (
	// ModuleIncludedLocations is how many locations every Core module
	// covers in its org-license price.
	ModuleIncludedLocations = 5

	// WatchtowerIncludedLocations is how many locations a watchtower base
	// price covers.
	WatchtowerIncludedLocations = 1

	// EnterpriseLocationThreshold is the location count at which enterprise
	// pricing regimes take over.
	EnterpriseLocationThreshold = 30
)

// Well-known catalog ids.
const (
	WatchtowerCompetitive = "competitive"
	WatchtowerEvents      = "events"
	WatchtowerTrends      = "trends"
	WatchtowerBundleID    = "bundle"
)

func usd(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Default returns the built-in pricing epoch
func Default() *Catalog {
	return &Catalog{
		Epoch: "2026-01",

		Tiers: []TierDefinition{
			{
				ID:                      "standard",
				Layer:                   LayerReport,
				Name:                    "Report Standard",
				BasePrice:               usd(29),
				AdditionalLocationPrice: usd(19),
				AICredits:               AICreditGrant{Base: 50, PerLocation: 10},
				AISeats:                 1,
				Features: []string{
					"Monthly reputation report",
					"Review monitoring",
				},
			},
			{
				ID:                      "plus",
				Layer:                   LayerReport,
				Name:                    "Report Plus",
				BasePrice:               usd(49),
				AdditionalLocationPrice: usd(29),
				AICredits:               AICreditGrant{Base: 100, PerLocation: 25},
				AISeats:                 1,
				Features: []string{
					"Weekly reputation report",
					"Review monitoring",
					"Sentiment analysis",
				},
			},
			{
				ID:                      "lite",
				Layer:                   LayerCore,
				Name:                    "Core Lite",
				BasePrice:               usd(99),
				AdditionalLocationPrice: usd(49),
				AICredits:               AICreditGrant{Base: 250, PerLocation: 50},
				AISeats:                 3,
				Features: []string{
					"Live dashboard",
					"Review response inbox",
					"AI reply drafts",
				},
			},
			{
				ID:                      "pro",
				Layer:                   LayerCore,
				Name:                    "Core Pro",
				BasePrice:               usd(199),
				AdditionalLocationPrice: usd(79),
				AICredits:               AICreditGrant{Base: 500, PerLocation: 100},
				AISeats:                 5,
				Features: []string{
					"Live dashboard",
					"Review response inbox",
					"AI reply drafts",
					"Multi-location rollups",
					"Custom report builder",
					"Priority support",
				},
			},
		},

		Modules: []ModuleDefinition{
			{ID: "labor", Name: "Labor Insights", OrgLicensePrice: usd(139), PerLocationPrice: usd(19), IncludedLocations: ModuleIncludedLocations},
			{ID: "reviews", Name: "Review Booster", OrgLicensePrice: usd(99), PerLocationPrice: usd(12), IncludedLocations: ModuleIncludedLocations},
			{ID: "social", Name: "Social Publisher", OrgLicensePrice: usd(119), PerLocationPrice: usd(15), IncludedLocations: ModuleIncludedLocations},
			{ID: "listings", Name: "Listings Sync", OrgLicensePrice: usd(89), PerLocationPrice: usd(9), IncludedLocations: ModuleIncludedLocations},
			{ID: "insights", Name: "Guest Insights", OrgLicensePrice: usd(149), PerLocationPrice: usd(24), IncludedLocations: ModuleIncludedLocations},
		},

		WatchtowerModules: []WatchtowerModuleDefinition{
			{ID: WatchtowerCompetitive, Name: "Competitive Watch", BasePrice: usd(349), PerLocationPrice: usd(39), IncludedLocations: WatchtowerIncludedLocations},
			{ID: WatchtowerEvents, Name: "Event Watch", BasePrice: usd(249), PerLocationPrice: usd(29), IncludedLocations: WatchtowerIncludedLocations},
			{ID: WatchtowerTrends, Name: "Trend Watch", BasePrice: usd(249), PerLocationPrice: usd(35), IncludedLocations: WatchtowerIncludedLocations},
		},

		WatchtowerBundle: WatchtowerBundleDefinition{
			ID:               WatchtowerBundleID,
			Name:             "Watchtower Bundle",
			BasePrice:        usd(720),
			PerLocationPrice: usd(82),
			Includes:         []string{WatchtowerCompetitive, WatchtowerEvents, WatchtowerTrends},
			BaseSavings:      usd(127),
			SavingsPercent:   usd(15),
		},

		WatchtowerTiers: []WatchtowerEnterpriseTier{
			{
				Range: LocationRange{First: 30, Last: 75},
				ModulePrices: map[string]decimal.Decimal{
					WatchtowerCompetitive: usd(1500),
					WatchtowerEvents:      usd(1100),
					WatchtowerTrends:      usd(1200),
				},
				BundlePrice: usd(3300),
			},
			{
				Range: LocationRange{First: 76, Last: 150},
				ModulePrices: map[string]decimal.Decimal{
					WatchtowerCompetitive: usd(2500),
					WatchtowerEvents:      usd(1900),
					WatchtowerTrends:      usd(2100),
				},
				BundlePrice: usd(5700),
			},
			{
				Range: LocationRange{First: 151, Last: 300},
				ModulePrices: map[string]decimal.Decimal{
					WatchtowerCompetitive: usd(4000),
					WatchtowerEvents:      usd(3100),
					WatchtowerTrends:      usd(3400),
				},
				BundlePrice: usd(9200),
			},
		},

		ClientTypes: []ClientTypeRule{
			{Type: "independent", Label: "Independent", Range: LocationRange{First: 1, Last: 2}, DiscountTier: usd(0), PricingModel: ModelStandard},
			{Type: "growth", Label: "Growth Group", Range: LocationRange{First: 3, Last: 9}, DiscountTier: usd(10), PricingModel: ModelGrowth},
			{Type: "multi-site", Label: "Multi-Site Operator", Range: LocationRange{First: 10, Last: 29}, DiscountTier: usd(15), PricingModel: ModelGrowth},
			{Type: "franchise", Label: "Franchise Group", Range: LocationRange{First: 5, Last: 0}, DiscountTier: usd(12), PricingModel: ModelGrowth},
			// Enterprise keeps a nominal tier for display, but the discount
			// stack never applies it: enterprise clients are priced by the
			// volume and org-license models instead.
			{Type: "enterprise", Label: "Enterprise", Range: LocationRange{First: 30, Last: 0}, DiscountTier: usd(20), PricingModel: ModelEnterprise},
		},

		EarlyAdopter: EarlyAdopterTerms{
			DiscountPercent:   usd(20),
			BonusCredits:      500,
			PriceLockMonths:   12,
			ExtendedTrialDays: 30,
		},

		VolumeTiers: []EnterpriseVolumeTier{
			{Range: LocationRange{First: 30, Last: 50}, Monthly: usd(4500)},
			{Range: LocationRange{First: 51, Last: 100}, Monthly: usd(8000)},
			{Range: LocationRange{First: 101, Last: 250}, Monthly: usd(15000)},
			{Range: LocationRange{First: 251, Last: 0}, Custom: true},
		},

		OrgLicense: EnterpriseOrgLicense{
			BaseFee: usd(2500),
			Bands: []RateBand{
				{Range: LocationRange{First: 1, Last: 10}, Rate: usd(99)},
				{Range: LocationRange{First: 11, Last: 30}, Rate: usd(79)},
				{Range: LocationRange{First: 31, Last: 100}, Rate: usd(59)},
				{Range: LocationRange{First: 101, Last: 0}, Rate: usd(45)},
			},
		},
	}
}
