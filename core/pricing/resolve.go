package pricing

import (
	"plate-quote/internal/errors"
)

// Resolve merges an optional partial override into the baseline and
// returns the effective configuration for one calculation.
//
// The result is always a fresh deep copy: Resolve never mutates the
// baseline, takes no locks, and two concurrent resolutions share
// nothing. Table-valued override fields replace the baseline's whole
// sub-table. After merging, the derived price table is filtered by the
// enabled flags; if that filter empties the table while an override
// table was in play, the baseline prices (filtered by the same flags)
// are used instead, so a misconfigured override can narrow availability
// but never zero out pricing silently.
func Resolve(baseline *Config, ov *Override) (*Config, error) {
	eff := baseline.Clone()

	candidate := eff.PricePerSqIn
	overridePrices := false

	if ov != nil {
		if m := ov.MaterialEnabled; m != nil {
			eff.MaterialEnabled = cloneMap(m)
		}
		if t := ov.thicknessEnabled(); t != nil {
			eff.ThicknessEnabled = t
		}
		if lt := ov.leadTimeEnabled(); lt != nil {
			eff.LeadTimeEnabled = lt
		}
		if m := ov.leadTimeMultiplier(); m != nil {
			eff.LeadTimeMultiplier = m
		}
		if ov.DefaultLeadTimeDays != nil {
			eff.DefaultLeadTimeDays = *ov.DefaultLeadTimeDays
		}
		if len(ov.DiscountTiers) > 0 {
			eff.DiscountTiers = append([]DiscountTier(nil), ov.DiscountTiers...)
		}
		if len(ov.DensityLbPerCuIn) > 0 {
			eff.DensityLbPerCuIn = cloneMap(ov.DensityLbPerCuIn)
		}
		if len(ov.WeightMultiplier) > 0 {
			eff.WeightMultiplier = cloneMap(ov.WeightMultiplier)
		}
		if ov.Shipping != nil {
			eff.Shipping = *ov.Shipping
		}
		if p := ov.priceTable(); p != nil {
			candidate = p
			overridePrices = true
		}
	}

	filtered := filterPrices(candidate, eff)
	if len(filtered) == 0 && overridePrices {
		// Misconfigured override: fall back to baseline prices, still
		// honoring the enabled flags.
		filtered = filterPrices(baseline.PricePerSqIn, eff)
	}
	if len(filtered) == 0 {
		return nil, errors.Config("effective price table is empty: no enabled material has a price")
	}
	eff.PricePerSqIn = filtered

	// The effective lead-time table is the multiplier map narrowed to
	// the enabled days.
	leadTimes := make(map[int]float64)
	for days, on := range eff.LeadTimeEnabled {
		if !on {
			continue
		}
		if mult, ok := eff.LeadTimeMultiplier[days]; ok {
			leadTimes[days] = mult
		}
	}
	if len(leadTimes) == 0 {
		return nil, errors.Config("no enabled lead time has a multiplier")
	}
	eff.LeadTimeMultiplier = leadTimes

	if len(eff.DiscountTiers) == 0 {
		return nil, errors.Config("quantity discount tiers are empty")
	}

	return eff, nil
}

// filterPrices drops every (material, thickness) entry whose material or
// thickness is not enabled.
func filterPrices(table map[string]map[float64]float64, cfg *Config) map[string]map[float64]float64 {
	out := make(map[string]map[float64]float64)
	for mat, prices := range table {
		for t, price := range prices {
			if !cfg.ThicknessAllowed(mat, t) {
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
