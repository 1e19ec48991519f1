package quote

// PackageDims is the estimated shipping package size, in inches.
type PackageDims struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ShippingRates is the estimated rate per carrier service tier, in
// integer cents, ready for a checkout collaborator to use as fixed
// shipping options.
type ShippingRates struct {
	GroundCents    int64 `json:"ups_ground_cents"`
	TwoDayCents    int64 `json:"ups_2day_cents"`
	OvernightCents int64 `json:"ups_nextday_cents"`
}

// Result is the full structured quote. Currency display fields are
// rounded to two decimals; the cents fields are exact round-half-up
// minor-unit conversions of the corresponding display values, so unit
// and total never drift by a cent between the two representations.
type Result struct {
	// Geometry.
	AreaSqIn     float64 `json:"area_sq_in"`
	LinearInches float64 `json:"linear_inches"`

	// Itemized costs, per unit, before multipliers.
	MaterialCost          float64 `json:"material_cost"`
	CuttingCost           float64 `json:"cutting_cost"`
	BoreMachiningCost     float64 `json:"bore_machining_cost"`
	ChamferCost           float64 `json:"chamfer_cost"`
	LoadCost              float64 `json:"load_cost"`
	InspectionCost        float64 `json:"inspection_cost"`
	SubtotalPreMultiplier float64 `json:"subtotal_pre_multiplier"`

	// Pricing.
	LeadTimeMultiplier         float64 `json:"lead_time_multiplier"`
	UnitPricePreDiscount       float64 `json:"unit_price_pre_discount"`
	QuantityDiscountMultiplier float64 `json:"quantity_discount_multiplier"`
	UnitPrice                  float64 `json:"unit_price"`
	Quantity                   int     `json:"quantity"`
	TotalPrice                 float64 `json:"total_price"`
	UnitPriceCents             int64   `json:"unit_price_cents"`
	TotalPriceCents            int64   `json:"total_price_cents"`

	// Shipping.
	EstimatedUnitWeightLb  float64       `json:"estimated_unit_weight_lb"`
	EstimatedTotalWeightLb float64       `json:"estimated_total_weight_lb"`
	EstimatedPackageIn     PackageDims   `json:"estimated_package_in"`
	Shipping               ShippingRates `json:"shipping"`

	// Echo fields, passed through untouched.
	HandleLabel  string   `json:"handle_label"`
	ChamferWidth *float64 `json:"chamfer_width"`
}
