// Package quote is the pricing engine: a pure, deterministic function
// from validated part inputs and a resolved pricing configuration to a
// structured quote. No I/O, no clock reads, no hidden state: the same
// inputs and configuration always produce the same result.
package quote

import (
	"strings"

	"plate-quote/core/pricing"
	"plate-quote/internal/errors"
)

const (
	// MaxPaddleDiaIn is the hard cap on paddle diameter.
	MaxPaddleDiaIn = 48.0

	// DefaultChamferWidthIn is used when a chamfer is requested
	// without a width.
	DefaultChamferWidthIn = 0.062

	// DefaultHandleLabel is the sentinel for an unlabeled handle.
	DefaultHandleLabel = "No label"
)

// Inputs describes one quote request: a plate with a circular paddle
// head, a center bore, and a handle. All linear dimensions are inches.
type Inputs struct {
	Quantity             int     `json:"quantity"`
	Material             string  `json:"material"`
	Thickness            float64 `json:"thickness"`
	HandleWidth          float64 `json:"handle_width"`
	HandleLengthFromBore float64 `json:"handle_length_from_bore"`
	PaddleDia            float64 `json:"paddle_dia"`
	BoreDia              float64 `json:"bore_dia"`
	BoreTolerance        float64 `json:"bore_tolerance"`
	Chamfer              bool    `json:"chamfer"`

	// ChamferWidth is meaningful only when Chamfer is set; it is
	// defaulted by Normalize and forced nil when there is no chamfer.
	ChamferWidth *float64 `json:"chamfer_width"`

	ShipsInDays int `json:"ships_in_days"`

	// HandleLabel is informational only and never affects price.
	HandleLabel string `json:"handle_label"`
}

// Normalize applies the optional-field defaulting rules and returns the
// normalized copy. This is the single place those rules live; callers
// decode untyped payloads, normalize once, and pass the result on.
func (in Inputs) Normalize() Inputs {
	in.HandleLabel = strings.TrimSpace(in.HandleLabel)
	if in.HandleLabel == "" {
		in.HandleLabel = DefaultHandleLabel
	}

	if in.Chamfer {
		if in.ChamferWidth == nil {
			w := DefaultChamferWidthIn
			in.ChamferWidth = &w
		}
	} else {
		in.ChamferWidth = nil
	}

	return in
}

// validate checks every invariant against the effective configuration
// and collects all violations, so a caller sees the full list at once.
// The check order is fixed, which keeps the reported error
// deterministic for a given bad input.
func (in Inputs) validate(cfg *pricing.Config) error {
	type violation struct {
		field  string
		reason string
	}
	var violations []violation
	fail := func(field, reason string) {
		violations = append(violations, violation{field, reason})
	}

	if in.Quantity < 1 {
		fail("quantity", "must be >= 1")
	}

	prices, knownMaterial := cfg.PricePerSqIn[in.Material]
	if !knownMaterial {
		fail("material", "unknown material: "+in.Material)
	} else if _, ok := prices[in.Thickness]; !ok {
		fail("thickness", "no price for this thickness in material "+in.Material)
	}

	if in.Thickness <= 0 {
		fail("thickness", "must be positive")
	}
	if in.HandleWidth <= 0 {
		fail("handle_width", "must be positive")
	}
	if in.HandleLengthFromBore <= 0 {
		fail("handle_length_from_bore", "must be positive")
	}
	if in.PaddleDia <= 0 {
		fail("paddle_dia", "must be positive")
	}
	if in.BoreDia <= 0 {
		fail("bore_dia", "must be positive")
	}

	if _, ok := cfg.InspectionMinsByTol[in.BoreTolerance]; !ok {
		fail("bore_tolerance", "unsupported bore tolerance")
	}
	if _, ok := cfg.LeadTimeMultiplier[in.ShipsInDays]; !ok {
		fail("ships_in_days", "unsupported lead time")
	}

	if in.BoreDia >= in.PaddleDia {
		fail("bore_dia, paddle_dia", "bore diameter must be smaller than paddle diameter")
	}
	if in.HandleLengthFromBore <= in.PaddleDia/2 {
		fail("handle_length_from_bore", "handle must clear the paddle radius")
	}
	if in.PaddleDia > MaxPaddleDiaIn {
		fail("paddle_dia", "exceeds maximum paddle diameter")
	}

	if len(violations) == 0 {
		return nil
	}

	fields := make([]string, len(violations))
	reasons := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.field
		reasons[i] = v.field + ": " + v.reason
	}
	return errors.New(errors.TypeValidation, strings.Join(reasons, "; ")).
		WithContext("fields", fields)
}
