// Package pricing implements the pricing computation engine: pure functions
// from a catalog and a selection to priced results. Nothing in this package
// performs I/O or holds state between calls.
package pricing

import "github.com/shopspring/decimal"

// Price is a monetary result that may instead be the "custom pricing"
// sentinel. A custom price is a valid terminal state, distinct from a
// priced zero: callers must check IsCustom before using Amount.
type Price struct {
	Amount decimal.Decimal `json:"amount"`
	Custom bool            `json:"custom,omitempty"`
	Note   string          `json:"note,omitempty"`
}

// PriceOf wraps a computed amount
func PriceOf(amount decimal.Decimal) Price {
	return Price{Amount: amount}
}

// CustomPrice returns the contact-sales sentinel
func CustomPrice(note string) Price {
	return Price{Custom: true, Note: note}
}

// IsCustom reports whether this is the contact-sales sentinel
func (p Price) IsCustom() bool {
	return p.Custom
}

// String renders the price for receipts and logs
func (p Price) String() string {
	if p.Custom {
		return "Custom"
	}
	return "$" + p.Amount.StringFixed(2)
}

// LineItem is one row of a priced breakdown
type LineItem struct {
	Item  string `json:"item"`
	Price Price  `json:"price"`
	Note  string `json:"note,omitempty"`
}

// additionalLocations returns the count of locations billed beyond the
// included allowance. Location #1 (or the included block) is always covered
// by the base price.
func additionalLocations(locations, included int) int64 {
	if locations <= included {
		return 0
	}
	return int64(locations - included)
}

func percentFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(percent.Div(decimal.NewFromInt(100)))
}
