package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Registry returns the competitors registered for comparison. Estimates
// reflect published list pricing where it exists; quote-only vendors are
// registered as unpriceable so the aggregator can surface the gap honestly.
func Registry() []Competitor {
	return []Competitor{
		&birdview{},
		&stagedoor{},
		&listingly{},
		&tablechat{},
		&summitRep{},
		&localpulse{},
	}
}

// perSeatEstimate builds a standard cost from monthly and one-time figures
func perSeatEstimate(monthly, setup float64, breakdown, notes []string, confidence float64) CompetitorCost {
	m := decimal.NewFromFloat(monthly)
	s := decimal.NewFromFloat(setup)
	annual := m.Mul(decimal.NewFromInt(12))
	firstYear := annual.Add(s)

	return CompetitorCost{
		Monthly:    &m,
		FirstYear:  &firstYear,
		Ongoing:    &annual,
		SetupFee:   &s,
		Breakdown:  breakdown,
		Notes:      notes,
		Confidence: confidence,
	}
}

// birdview: per-location subscription with onboarding fee, modules included
type birdview struct{}

func (*birdview) Name() string   { return "Birdview" }
func (*birdview) Verified() bool { return true }
func (*birdview) Hidden() bool   { return false }

func (*birdview) Estimate(locations int, modules []string) CompetitorCost {
	perLocation := 299.0
	if locations >= 10 {
		perLocation = 249.0 // published volume rate
	}
	monthly := perLocation * float64(locations)
	return perSeatEstimate(monthly, 299,
		[]string{fmt.Sprintf("%d locations x $%.0f/mo", locations, perLocation), "$299 onboarding"},
		[]string{"all add-on features included in base plan"},
		0.8)
}

// stagedoor: flat per-location rate, charges extra for each add-on module
type stagedoor struct{}

func (*stagedoor) Name() string   { return "Stagedoor" }
func (*stagedoor) Verified() bool { return true }
func (*stagedoor) Hidden() bool   { return false }

func (*stagedoor) Estimate(locations int, modules []string) CompetitorCost {
	monthly := 399.0 * float64(locations)
	breakdown := []string{fmt.Sprintf("%d locations x $399/mo", locations)}
	if n := len(modules); n > 0 {
		addons := 49.0 * float64(n) * float64(locations)
		monthly += addons
		breakdown = append(breakdown, fmt.Sprintf("%d add-ons x $49/location", n))
	}
	return perSeatEstimate(monthly, 0, breakdown,
		[]string{"pricing from published partner rate card"},
		0.7)
}

// listingly: cheap annual listings product, weak feature overlap
type listingly struct{}

func (*listingly) Name() string   { return "Listingly" }
func (*listingly) Verified() bool { return true }
func (*listingly) Hidden() bool   { return false }

func (*listingly) Estimate(locations int, modules []string) CompetitorCost {
	monthly := 42.0 * float64(locations)
	return perSeatEstimate(monthly, 0,
		[]string{fmt.Sprintf("%d locations x $499/yr", locations)},
		[]string{"listings management only, no review or intelligence features"},
		0.9)
}

// tablechat: low per-location price with a 5-location minimum
type tablechat struct{}

func (*tablechat) Name() string   { return "TableChat" }
func (*tablechat) Verified() bool { return true }
func (*tablechat) Hidden() bool   { return false }

func (*tablechat) Estimate(locations int, modules []string) CompetitorCost {
	billed := locations
	notes := []string{}
	if billed < 5 {
		billed = 5
		notes = append(notes, "5-location contract minimum")
	}
	monthly := 149.0 * float64(billed)
	return perSeatEstimate(monthly, 499,
		[]string{fmt.Sprintf("%d billed locations x $149/mo", billed), "$499 implementation"},
		notes,
		0.6)
}

// summitRep: enterprise vendor, quote-only, no public pricing
type summitRep struct{}

func (*summitRep) Name() string   { return "Summit Reputation" }
func (*summitRep) Verified() bool { return true }
func (*summitRep) Hidden() bool   { return false }

func (*summitRep) Estimate(locations int, modules []string) CompetitorCost {
	return CompetitorCost{
		Notes:      []string{"pricing is quote-only and not publicly determinable"},
		Confidence: 0,
	}
}

// localpulse: pricing observed secondhand, not yet verified against a
// public source, so excluded from comparisons until it is
type localpulse struct{}

func (*localpulse) Name() string   { return "LocalPulse" }
func (*localpulse) Verified() bool { return false }
func (*localpulse) Hidden() bool   { return false }

func (*localpulse) Estimate(locations int, modules []string) CompetitorCost {
	monthly := 199.0 * float64(locations)
	return perSeatEstimate(monthly, 0, nil,
		[]string{"unverified pricing"},
		0.3)
}
