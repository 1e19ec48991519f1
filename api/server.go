// Package api - Thin HTTP layer over the pricing engine
// The API is only responsible for input ingestion, engine invocation,
// and output serialization. It never performs pricing logic, and it
// maps the engine's two error kinds onto client vs. server faults.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plate-quote/core/pricing"
	"plate-quote/core/quote"
	"plate-quote/internal/errors"
	"plate-quote/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	provider pricing.Provider
}

// NewServer creates a new API server. The provider supplies the
// effective pricing configuration per request, so knob edits take
// effect without restarting.
func NewServer(version string, provider pricing.Provider) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		provider: provider,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /config/active", s.handleActiveConfig)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	cfg, err := s.provider.Effective()
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	result, err := quote.Calculate(req.Inputs, cfg)
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	logging.Info("quote computed",
		zap.String("request_id", requestID),
		zap.String("material", req.Material),
		zap.Int("quantity", req.Quantity),
		zap.Int64("total_price_cents", result.TotalPriceCents),
	)

	s.writeJSON(w, QuoteResponse{RequestID: requestID, Quote: result}, http.StatusOK)
}

// handleActiveConfig handles GET /config/active
func (s *Server) handleActiveConfig(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	cfg, err := s.provider.Effective()
	if err != nil {
		s.writeEngineError(w, requestID, err)
		return
	}

	thickness := make(map[string]map[string]bool, len(cfg.ThicknessEnabled))
	for mat, enabled := range cfg.ThicknessEnabled {
		thickness[mat] = make(map[string]bool, len(enabled))
		for t, on := range enabled {
			thickness[mat][strconv.FormatFloat(t, 'f', -1, 64)] = on
		}
	}

	s.writeJSON(w, ActiveConfigResponse{
		MaterialEnabled:     cfg.MaterialEnabled,
		ThicknessEnabled:    thickness,
		LeadTimeEnabled:     cfg.LeadTimeEnabled,
		DefaultLeadTimeDays: cfg.DefaultLeadTimeDays,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{OK: true}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, VersionResponse{Version: s.version}, http.StatusOK)
}

// writeEngineError maps engine error kinds to transport status codes:
// validation faults are the caller's (400), configuration faults are
// ours (500). Anything else is treated as internal.
func (s *Server) writeEngineError(w http.ResponseWriter, requestID string, err error) {
	var (
		code    = "INTERNAL_ERROR"
		status  = http.StatusInternalServerError
		context interface{}
	)

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		context = e.Context
		switch e.Type {
		case errors.TypeValidation:
			status = http.StatusBadRequest
		case errors.TypeConfig:
			status = http.StatusInternalServerError
		}
	}

	if status >= http.StatusInternalServerError {
		logging.Error("quote failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}

	s.writeError(w, requestID, code, err.Error(), context, status)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, context interface{}, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Context:   context,
	}, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
