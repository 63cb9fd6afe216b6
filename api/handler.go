package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sundae-pricing/core/compare"
	"sundae-pricing/core/pricing"
	"sundae-pricing/core/quote"
	"sundae-pricing/internal/logging"
)

// handleQuote prices a configuration
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := quote.Compose(s.catalog, req.Configuration)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	resp := QuoteResponse{
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Epoch:     s.catalog.Epoch,
		InputHash: inputHash(req.Configuration),
		Result:    result,
	}

	if req.IncludeComparisons {
		resp.Comparisons = compare.Compare(
			s.competitors, result.Total, req.Configuration.Locations, req.Configuration.Modules)
	}

	logging.Info("quote composed",
		zap.String("request_id", resp.RequestID),
		zap.String("input_hash", resp.InputHash),
		zap.String("total", result.Total.StringFixed(2)),
	)

	s.writeJSON(w, http.StatusOK, resp)
}

// handleCompare runs only the competitor comparison
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := quote.Compose(s.catalog, req.Configuration)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	comparisons := compare.Compare(
		s.competitors, result.Total, req.Configuration.Locations, req.Configuration.Modules)

	s.writeJSON(w, http.StatusOK, CompareResponse{
		RequestID:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		SundaeTotal: result.Total.StringFixed(2),
		Comparisons: comparisons,
	})
}

// handleEnterprise recommends an enterprise pricing model
func (s *Server) handleEnterprise(w http.ResponseWriter, r *http.Request) {
	var req EnterpriseRequest
	if !s.decode(w, r, &req) {
		return
	}

	rec := pricing.RecommendEnterpriseModel(s.catalog, req.Locations, req.BrandCount)

	s.writeJSON(w, http.StatusOK, EnterpriseResponse{
		RequestID:      uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Recommendation: rec,
	})
}

// handleCatalog returns the active catalog epoch
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "epoch": s.catalog.Epoch})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}
