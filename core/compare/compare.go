// Package compare estimates what named competitors would charge for the
// same configuration and computes savings against the composed Sundae
// price. Estimates are independent of the pricing engine and carry their
// own confidence.
package compare

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CompetitorCost is one competitor's estimated cost. All price fields are
// nil for a competitor whose pricing is not publicly determinable; Notes
// then explains why.
type CompetitorCost struct {
	Monthly   *decimal.Decimal `json:"monthly,omitempty"`
	FirstYear *decimal.Decimal `json:"first_year,omitempty"`
	Ongoing   *decimal.Decimal `json:"ongoing,omitempty"`
	SetupFee  *decimal.Decimal `json:"setup_fee,omitempty"`
	Breakdown []string         `json:"breakdown,omitempty"`
	Notes     []string         `json:"notes,omitempty"`

	// Confidence in the estimate, 0-1
	Confidence float64 `json:"confidence"`
}

// Priceable reports whether the competitor produced a numeric estimate
func (c CompetitorCost) Priceable() bool {
	return c.Monthly != nil
}

// Competitor estimates its own cost for a configuration
type Competitor interface {
	// Name is the competitor's display name
	Name() string

	// Verified reports whether the estimate comes from verified public
	// pricing. Unverified competitors are excluded from comparisons.
	Verified() bool

	// Hidden reports whether the competitor is excluded from display
	Hidden() bool

	// Estimate computes the competitor's cost for a location count and
	// module selection
	Estimate(locations int, modules []string) CompetitorCost
}

// Comparison is one competitor's cost with savings against the Sundae price
type Comparison struct {
	Competitor string         `json:"competitor"`
	Cost       CompetitorCost `json:"cost"`

	MonthlySavings   *decimal.Decimal `json:"monthly_savings,omitempty"`
	FirstYearSavings *decimal.Decimal `json:"first_year_savings,omitempty"`
	OngoingSavings   *decimal.Decimal `json:"ongoing_savings,omitempty"`
}

// Compare estimates every registered competitor against the Sundae monthly
// total. Hidden and unverified competitors are filtered out. Unpriceable
// competitors stay in the result with their note and no savings figures,
// after all priced entries. Priced entries sort descending by first-year
// savings.
func Compare(competitors []Competitor, sundaeMonthly decimal.Decimal, locations int, modules []string) []Comparison {
	sundaeAnnual := sundaeMonthly.Mul(decimal.NewFromInt(12))

	var results []Comparison
	for _, c := range competitors {
		if c.Hidden() || !c.Verified() {
			continue
		}

		cost := c.Estimate(locations, modules)
		cmp := Comparison{Competitor: c.Name(), Cost: cost}

		if cost.Priceable() {
			cmp.MonthlySavings = diff(*cost.Monthly, sundaeMonthly)
			if cost.FirstYear != nil {
				cmp.FirstYearSavings = diff(*cost.FirstYear, sundaeAnnual)
			}
			if cost.Ongoing != nil {
				cmp.OngoingSavings = diff(*cost.Ongoing, sundaeAnnual)
			}
		}

		results = append(results, cmp)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].FirstYearSavings, results[j].FirstYearSavings
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.GreaterThan(*b)
	})

	return results
}

func diff(competitor, sundae decimal.Decimal) *decimal.Decimal {
	d := competitor.Sub(sundae).Round(2)
	return &d
}
