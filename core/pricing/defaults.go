package pricing

// Default returns the baseline configuration. These numbers are the
// tuned production tables; the price table is the one the engine's
// golden reference values were recorded against, so changing any entry
// reprices historical quotes.
func Default() *Config {
	return &Config{
		PricePerSqIn: map[string]map[float64]float64{
			"304":          {0.125: 0.220, 0.25: 0.425, 0.375: 0.460},
			"316":          {0.125: 0.270, 0.25: 0.440, 0.375: 0.580},
			"Carbon Steel": {0.125: 0.090, 0.25: 0.100, 0.375: 0.130},
			"Monel":        {0.125: 2.780, 0.25: 6.670},
			"Hastelloy":    {0.125: 3.580, 0.25: 7.540, 0.375: 14.020},
		},

		MaterialEnabled: map[string]bool{
			"304":          true,
			"316":          true,
			"Carbon Steel": true,
			"Monel":        false,
			"Hastelloy":    false,
		},

		ThicknessEnabled: map[string]map[float64]bool{
			"304":          {0.125: true, 0.25: true, 0.375: true, 0.5: true},
			"316":          {0.125: true, 0.25: true, 0.375: true, 0.5: true},
			"Carbon Steel": {0.125: true, 0.25: true, 0.375: true, 0.5: true},
			"Monel":        {0.125: true, 0.25: true, 0.5: false},
			"Hastelloy":    {0.125: true, 0.25: true, 0.375: true, 0.5: true},
		},

		LeadTimeMultiplier: map[int]float64{7: 2.3, 14: 1.6, 21: 1.0},
		LeadTimeEnabled:    map[int]bool{7: true, 14: true, 21: true},

		DefaultLeadTimeDays: 21,

		DiscountTiers: []DiscountTier{
			{MinQty: 1, Multiplier: 1.00},
			{MinQty: 5, Multiplier: 0.97},
			{MinQty: 10, Multiplier: 0.95},
			{MinQty: 25, Multiplier: 0.92},
			{MinQty: 50, Multiplier: 0.90},
		},

		CuttingRatePerLinearIn: 0.826,
		LaborRatePerHour:       150,
		MillSpeedIPM:           28,
		ChamferSpeedIPM:        28,
		LoadTimeMins:           6,

		InspectionMinsByTol: map[float64]float64{0.005: 6, 0.002: 12, 0.001: 18},

		DensityLbPerCuIn: map[string]float64{
			"304":          0.289,
			"316":          0.289,
			"Carbon Steel": 0.283,
			"Monel":        0.319,
			"Hastelloy":    0.322,
		},

		// No baseline weight correction; the stainless upward fudge is
		// applied through an override when wanted.
		WeightMultiplier: map[string]float64{},

		Shipping: ShippingConfig{
			DimDivisor:          139,
			BaseFee:             12.50,
			PerLbRate:           0.85,
			TwoDayMultiplier:    1.85,
			OvernightMultiplier: 2.85,
		},
	}
}
