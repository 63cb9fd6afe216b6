package pricing

import (
	"github.com/shopspring/decimal"

	"sundae-pricing/core/catalog"
)

// ModulePrice prices one Core add-on module. The org-license price covers
// the module's included locations; only the overage bills per location.
// Modules are priced independently of each other: there is no cross-module
// combo pricing.
func ModulePrice(cat *catalog.Catalog, moduleID string, locations int) (decimal.Decimal, error) {
	mod, err := cat.Module(moduleID)
	if err != nil {
		return decimal.Zero, err
	}

	extra := additionalLocations(locations, mod.IncludedLocations)
	return mod.OrgLicensePrice.Add(mod.PerLocationPrice.Mul(decimal.NewFromInt(extra))), nil
}
