// Package api - HTTP surface for the pricing engine
// The API is only responsible for input ingestion, engine orchestration and
// output serialization. It never performs pricing logic.
package api

import (
	"time"

	"sundae-pricing/core/compare"
	"sundae-pricing/core/pricing"
	"sundae-pricing/core/quote"
	"sundae-pricing/core/session"
)

// QuoteRequest is the input to POST /quote
type QuoteRequest struct {
	Configuration session.Configuration `json:"configuration" validate:"required"`

	// IncludeComparisons adds competitor comparisons to the response
	IncludeComparisons bool `json:"include_comparisons,omitempty"`
}

// QuoteResponse is the output of POST /quote
type QuoteResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	// Epoch identifies the catalog snapshot used
	Epoch string `json:"epoch"`

	// InputHash is the deterministic hash of the configuration; identical
	// configurations always hash identically, making responses cacheable
	InputHash string `json:"input_hash"`

	Result      quote.PriceResult    `json:"result"`
	Comparisons []compare.Comparison `json:"comparisons,omitempty"`
}

// CompareRequest is the input to POST /compare
type CompareRequest struct {
	Configuration session.Configuration `json:"configuration" validate:"required"`
}

// CompareResponse is the output of POST /compare
type CompareResponse struct {
	RequestID   string               `json:"request_id"`
	Timestamp   time.Time            `json:"timestamp"`
	SundaeTotal string               `json:"sundae_total"`
	Comparisons []compare.Comparison `json:"comparisons"`
}

// EnterpriseRequest is the input to POST /enterprise
type EnterpriseRequest struct {
	Locations  int `json:"locations" validate:"min=1"`
	BrandCount int `json:"brand_count" validate:"min=1"`
}

// EnterpriseResponse is the output of POST /enterprise
type EnterpriseResponse struct {
	RequestID      string                           `json:"request_id"`
	Timestamp      time.Time                        `json:"timestamp"`
	Recommendation pricing.EnterpriseRecommendation `json:"recommendation"`
}

// ErrorResponse is the error envelope for every endpoint
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the typed error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
