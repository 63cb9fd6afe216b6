package pricing

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
	"sundae-pricing/internal/errors"
)

// WatchtowerQuote is the priced intelligence add-on selection
type WatchtowerQuote struct {
	Price   Price           `json:"price"`
	Savings decimal.Decimal `json:"savings"`
	Items   []LineItem      `json:"items"`
}

// watchtowerSelection is the resolved form of the raw id list. The bundle
// tie-break is decided exactly once, here, before any pricing math runs.
type watchtowerSelection struct {
	bundle     bool
	individual []string // in catalog order, deduplicated
}

func resolveWatchtowerSelection(cat *catalog.Catalog, ids []string) (watchtowerSelection, error) {
	var sel watchtowerSelection
	seen := map[string]bool{}

	for _, id := range ids {
		if id == cat.WatchtowerBundle.ID {
			sel.bundle = true
			continue
		}
		if _, err := cat.WatchtowerModule(id); err != nil {
			return watchtowerSelection{}, err
		}
		seen[id] = true
	}

	// Catalog order keeps breakdowns deterministic regardless of the raw
	// selection order.
	for _, m := range cat.WatchtowerModules {
		if seen[m.ID] {
			sel.individual = append(sel.individual, m.ID)
		}
	}

	// Selecting all bundled modules individually is price-equivalent to the
	// bundle; substitute the cheaper bundle.
	if !sel.bundle {
		allIncluded := true
		for _, id := range cat.WatchtowerBundle.Includes {
			if !slices.Contains(sel.individual, id) {
				allIncluded = false
				break
			}
		}
		sel.bundle = allIncluded && len(sel.individual) > 0
	}

	if sel.bundle {
		sel.individual = nil
	}
	return sel, nil
}

// WatchtowerPrice prices the watchtower selection for a location count.
//
// Below the enterprise threshold, individual modules price as base plus
// per-location overage, and a bundle (explicit or substituted) prices from
// the bundle definition with the foregone individual total reported as
// savings. At the threshold and above, prices come flat from the enterprise
// rate table; a location count beyond the table returns the custom-pricing
// sentinel rather than an extrapolated rate.
func WatchtowerPrice(cat *catalog.Catalog, ids []string, locations int) (WatchtowerQuote, error) {
	sel, err := resolveWatchtowerSelection(cat, ids)
	if err != nil {
		return WatchtowerQuote{}, err
	}
	if !sel.bundle && len(sel.individual) == 0 {
		return WatchtowerQuote{Price: PriceOf(decimal.Zero), Savings: decimal.Zero}, nil
	}

	if locations >= catalog.EnterpriseLocationThreshold {
		return watchtowerEnterprise(cat, sel, locations)
	}
	return watchtowerStandard(cat, sel, locations)
}

func watchtowerStandard(cat *catalog.Catalog, sel watchtowerSelection, locations int) (WatchtowerQuote, error) {
	extra := decimal.NewFromInt(additionalLocations(locations, catalog.WatchtowerIncludedLocations))

	if sel.bundle {
		bundle := cat.WatchtowerBundle
		total := bundle.BasePrice.Add(bundle.PerLocationPrice.Mul(extra))

		individualTotal := decimal.Zero
		for _, id := range bundle.Includes {
			m, err := cat.WatchtowerModule(id)
			if err != nil {
				return WatchtowerQuote{}, err
			}
			individualTotal = individualTotal.Add(m.BasePrice).Add(m.PerLocationPrice.Mul(extra))
		}

		savings := individualTotal.Sub(total)
		if savings.IsNegative() {
			// The bundle discount is pre-baked into the catalog; a negative
			// value means the catalog data is broken.
			return WatchtowerQuote{}, errors.CatalogIntegrity("watchtower bundle priced above its individual modules")
		}

		return WatchtowerQuote{
			Price:   PriceOf(total),
			Savings: savings,
			Items: []LineItem{{
				Item:  bundle.Name,
				Price: PriceOf(total),
				Note:  fmt.Sprintf("saves $%s vs individual modules", savings.StringFixed(2)),
			}},
		}, nil
	}

	total := decimal.Zero
	var items []LineItem
	for _, id := range sel.individual {
		m, err := cat.WatchtowerModule(id)
		if err != nil {
			return WatchtowerQuote{}, err
		}
		price := m.BasePrice.Add(m.PerLocationPrice.Mul(extra))
		total = total.Add(price)
		items = append(items, LineItem{Item: m.Name, Price: PriceOf(price)})
	}

	return WatchtowerQuote{Price: PriceOf(total), Savings: decimal.Zero, Items: items}, nil
}

func watchtowerEnterprise(cat *catalog.Catalog, sel watchtowerSelection, locations int) (WatchtowerQuote, error) {
	tier, ok := cat.WatchtowerTier(locations)
	if !ok {
		// Beyond the rate table there is no published price to extrapolate.
		price := CustomPrice(fmt.Sprintf("custom pricing for %d locations, contact sales", locations))
		return WatchtowerQuote{
			Price: price,
			Items: []LineItem{{Item: "Watchtower", Price: price}},
		}, nil
	}

	if sel.bundle {
		return WatchtowerQuote{
			Price: PriceOf(tier.BundlePrice),
			Items: []LineItem{{
				Item:  cat.WatchtowerBundle.Name,
				Price: PriceOf(tier.BundlePrice),
				Note:  "enterprise flat rate",
			}},
		}, nil
	}

	total := decimal.Zero
	var items []LineItem
	for _, id := range sel.individual {
		m, err := cat.WatchtowerModule(id)
		if err != nil {
			return WatchtowerQuote{}, err
		}
		price, ok := tier.ModulePrices[id]
		if !ok {
			return WatchtowerQuote{}, errors.CatalogIntegrity("enterprise watchtower tier has no price for " + id)
		}
		total = total.Add(price)
		items = append(items, LineItem{Item: m.Name, Price: PriceOf(price), Note: "enterprise flat rate"})
	}

	return WatchtowerQuote{Price: PriceOf(total), Items: items}, nil
}
