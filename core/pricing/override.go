package pricing

import (
	"encoding/json"
	"os"
	"strconv"

	"plate-quote/internal/errors"
)

// Override is a partial configuration record in the shape the admin
// surface stores it: thickness and lead-time keys are strings, because
// the record round-trips through JSON. Any nil field falls back to the
// baseline; a present table-valued field replaces the baseline's whole
// sub-table rather than merging entry by entry.
type Override struct {
	PricePerSqIn        map[string]map[string]float64 `json:"price_per_sq_in,omitempty"`
	MaterialEnabled     map[string]bool               `json:"material_enabled,omitempty"`
	ThicknessEnabled    map[string]map[string]bool    `json:"thickness_enabled_by_material,omitempty"`
	LeadTimeMultiplier  map[string]float64            `json:"lead_time_multiplier,omitempty"`
	LeadTimeEnabled     map[string]bool               `json:"lead_time_enabled,omitempty"`
	DefaultLeadTimeDays *int                          `json:"default_lead_time_days,omitempty"`
	DiscountTiers       []DiscountTier                `json:"qty_discount_tiers,omitempty"`
	DensityLbPerCuIn    map[string]float64            `json:"density_lb_per_in3,omitempty"`
	WeightMultiplier    map[string]float64            `json:"weight_multiplier_by_material,omitempty"`
	Shipping            *ShippingConfig               `json:"shipping,omitempty"`
}

// LoadOverrideFile reads an override record from a JSON file. A missing
// file is not an error: it means "no override", and nil is returned.
func LoadOverrideFile(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading override file", err)
	}

	var ov Override
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing override file", err)
	}
	return &ov, nil
}

// priceTable converts the string-keyed wire table to float keys.
// Unparseable keys are skipped, matching how the admin record has
// always been read.
func (o *Override) priceTable() map[string]map[float64]float64 {
	if len(o.PricePerSqIn) == 0 {
		return nil
	}
	out := make(map[string]map[float64]float64, len(o.PricePerSqIn))
	for mat, prices := range o.PricePerSqIn {
		for key, price := range prices {
			t, err := strconv.ParseFloat(key, 64)
			if err != nil {
				continue
			}
			if out[mat] == nil {
				out[mat] = make(map[float64]float64, len(prices))
			}
			out[mat][t] = price
		}
	}
	return out
}

func (o *Override) thicknessEnabled() map[string]map[float64]bool {
	if o.ThicknessEnabled == nil {
		return nil
	}
	out := make(map[string]map[float64]bool, len(o.ThicknessEnabled))
	for mat, enabled := range o.ThicknessEnabled {
		out[mat] = make(map[float64]bool, len(enabled))
		for key, on := range enabled {
			t, err := strconv.ParseFloat(key, 64)
			if err != nil {
				continue
			}
			out[mat][t] = on
		}
	}
	return out
}

func (o *Override) leadTimeEnabled() map[int]bool {
	if o.LeadTimeEnabled == nil {
		return nil
	}
	out := make(map[int]bool, len(o.LeadTimeEnabled))
	for key, on := range o.LeadTimeEnabled {
		d, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[d] = on
	}
	return out
}

func (o *Override) leadTimeMultiplier() map[int]float64 {
	if o.LeadTimeMultiplier == nil {
		return nil
	}
	out := make(map[int]float64, len(o.LeadTimeMultiplier))
	for key, mult := range o.LeadTimeMultiplier {
		d, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[d] = mult
	}
	return out
}
