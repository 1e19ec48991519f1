// Package pricing holds the tunable pricing configuration: the
// material price table, availability toggles, process rates, lead-time
// multipliers, quantity-discount tiers, and shipping policy constants.
//
// A process-wide baseline is loaded once from static defaults. Callers
// may resolve a partial override against that baseline, producing a
// fresh effective Config per calculation. Configs handed to the engine
// are never shared mutable state: resolution deep-copies, so concurrent
// quote calculations cannot observe each other.
package pricing

// Config is the full set of pricing tables used by one calculation.
type Config struct {
	// PricePerSqIn maps material -> thickness (inches) -> $/sq in.
	PricePerSqIn map[string]map[float64]float64

	// MaterialEnabled gates materials independently of price presence.
	MaterialEnabled map[string]bool

	// ThicknessEnabled gates thicknesses per material. A missing inner
	// map means every priced thickness is available; a present map is
	// strict (unlisted thicknesses are off).
	ThicknessEnabled map[string]map[float64]bool

	// LeadTimeMultiplier maps ships-in days -> price multiplier.
	LeadTimeMultiplier map[int]float64

	// LeadTimeEnabled gates lead times.
	LeadTimeEnabled map[int]bool

	// DefaultLeadTimeDays is the lead time quoted when the caller
	// expresses no preference.
	DefaultLeadTimeDays int

	// DiscountTiers is the quantity-discount schedule, ascending by
	// MinQty. Multipliers are <= 1.0.
	DiscountTiers []DiscountTier

	// Process constants.
	CuttingRatePerLinearIn float64
	LaborRatePerHour       float64
	MillSpeedIPM           float64
	ChamferSpeedIPM        float64
	LoadTimeMins           float64

	// InspectionMinsByTol maps bore tolerance class -> inspection minutes.
	InspectionMinsByTol map[float64]float64

	// DensityLbPerCuIn maps material -> lb/in^3 for shipping weight.
	DensityLbPerCuIn map[string]float64

	// WeightMultiplier is an optional per-material weight correction
	// factor; a missing key means 1.0.
	WeightMultiplier map[string]float64

	// Shipping holds the carrier rate-estimation policy constants.
	Shipping ShippingConfig
}

// DiscountTier is one quantity-discount step.
type DiscountTier struct {
	MinQty     int     `json:"min_qty"`
	Multiplier float64 `json:"multiplier"`
}

// ShippingConfig holds the rate-estimation policy constants. The
// expedited multipliers and dimensional divisor are tuned business
// numbers, not carrier-published rules, so they live in configuration.
type ShippingConfig struct {
	// DimDivisor converts package volume (cu in) to dimensional weight (lb).
	DimDivisor float64 `json:"dim_divisor"`

	// BaseFee is the flat ground-service fee in dollars.
	BaseFee float64 `json:"base_fee"`

	// PerLbRate is the ground-service rate per billable pound.
	PerLbRate float64 `json:"per_lb_rate"`

	// TwoDayMultiplier scales the ground rate for 2-day service.
	TwoDayMultiplier float64 `json:"two_day_multiplier"`

	// OvernightMultiplier scales the ground rate for overnight service.
	OvernightMultiplier float64 `json:"overnight_multiplier"`
}

// MaterialAllowed reports whether a material is enabled.
func (c *Config) MaterialAllowed(material string) bool {
	return c.MaterialEnabled[material]
}

// ThicknessAllowed reports whether a (material, thickness) pair is
// enabled. The material must be enabled, and if a thickness map exists
// for the material it must explicitly enable the thickness.
func (c *Config) ThicknessAllowed(material string, thickness float64) bool {
	if !c.MaterialAllowed(material) {
		return false
	}
	enabled, ok := c.ThicknessEnabled[material]
	if !ok {
		return true
	}
	return enabled[thickness]
}

// Clone returns a deep copy. Resolution always works on a clone so the
// baseline survives any number of overrides untouched.
func (c *Config) Clone() *Config {
	out := *c

	out.PricePerSqIn = clonePriceTable(c.PricePerSqIn)
	out.MaterialEnabled = cloneMap(c.MaterialEnabled)
	out.ThicknessEnabled = make(map[string]map[float64]bool, len(c.ThicknessEnabled))
	for mat, m := range c.ThicknessEnabled {
		out.ThicknessEnabled[mat] = cloneMap(m)
	}
	out.LeadTimeMultiplier = cloneMap(c.LeadTimeMultiplier)
	out.LeadTimeEnabled = cloneMap(c.LeadTimeEnabled)
	out.InspectionMinsByTol = cloneMap(c.InspectionMinsByTol)
	out.DensityLbPerCuIn = cloneMap(c.DensityLbPerCuIn)
	out.WeightMultiplier = cloneMap(c.WeightMultiplier)

	out.DiscountTiers = make([]DiscountTier, len(c.DiscountTiers))
	copy(out.DiscountTiers, c.DiscountTiers)

	return &out
}

func clonePriceTable(t map[string]map[float64]float64) map[string]map[float64]float64 {
	out := make(map[string]map[float64]float64, len(t))
	for mat, prices := range t {
		out[mat] = cloneMap(prices)
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
