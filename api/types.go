// Package api - request/response wire types
package api

import (
	"plate-quote/core/quote"
)

// QuoteRequest is the wire shape of one quote request. It decodes
// straight into the engine's inputs; normalization of the optional
// fields happens inside the engine, not here.
type QuoteRequest struct {
	quote.Inputs
}

// QuoteResponse wraps the engine result with request bookkeeping.
type QuoteResponse struct {
	RequestID string        `json:"request_id"`
	Quote     *quote.Result `json:"quote"`
}

// ActiveConfigResponse is the public view of what is currently
// enabled, so a storefront can render its pickers without a redeploy.
// Thickness keys are strings because the payload round-trips through
// JSON, same shape as the stored override record.
type ActiveConfigResponse struct {
	MaterialEnabled     map[string]bool            `json:"material_enabled"`
	ThicknessEnabled    map[string]map[string]bool `json:"thickness_enabled_by_material"`
	LeadTimeEnabled     map[int]bool               `json:"lead_time_enabled"`
	DefaultLeadTimeDays int                        `json:"default_lead_time_days"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Context   interface{} `json:"context,omitempty"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// VersionResponse reports the engine version.
type VersionResponse struct {
	Version string `json:"version"`
}
