package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/compare"
	"sundae-pricing/core/session"
	"sundae-pricing/internal/errors"
)

// Server is the pricing API server
type Server struct {
	catalog     *catalog.Catalog
	competitors []compare.Competitor
	validate    *validator.Validate
	router      chi.Router
	version     string
}

// NewServer creates a server over one catalog epoch
func NewServer(cat *catalog.Catalog, version string) *Server {
	s := &Server{
		catalog:     cat,
		competitors: compare.Registry(),
		validate:    validator.New(),
		version:     version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/quote", s.handleQuote)
	r.Post("/compare", s.handleCompare)
	r.Post("/enterprise", s.handleEnterprise)
	r.Get("/catalog", s.handleCatalog)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a typed domain error to an HTTP status
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeCatalog, errors.TypeNotFound:
			status = http.StatusUnprocessableEntity
		case errors.TypeNotSupported:
			status = http.StatusNotImplemented
		}
	}

	s.writeError(w, code, err.Error(), status)
}

// inputHash computes a deterministic hash of a configuration so identical
// inputs are recognizably identical across calls
func inputHash(cfg session.Configuration) string {
	data, _ := json.Marshal(cfg)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
