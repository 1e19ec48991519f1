package quote

import (
	"math"

	"plate-quote/core/pricing"
)

// packagingMarginIn is added to both package length and width.
const packagingMarginIn = 4.0

// shipEstimate holds the raw (unrounded) shipping quantities for one
// quote. The engine converts the base rate to per-tier cents after its
// finiteness checks.
type shipEstimate struct {
	unitWeightLb  float64
	totalWeightLb float64
	pkg           PackageDims
	baseRate      float64
}

// estimateShipping computes the package, weight, and ground base rate
// for a quote. It reuses the geometry already derived by the engine and
// is deterministic like the rest of the calculation.
func estimateShipping(in Inputs, cfg *pricing.Config, areaSqIn, paddleRadius float64) shipEstimate {
	productLen := in.HandleLengthFromBore + paddleRadius
	productWidth := in.PaddleDia

	pkg := PackageDims{
		Length: productLen + packagingMarginIn,
		Width:  productWidth + packagingMarginIn,
		// One base inch, plus one thickness per stacked unit beyond
		// the first.
		Height: 1.0 + float64(max(in.Quantity-1, 0))*in.Thickness,
	}

	weightMult, ok := cfg.WeightMultiplier[in.Material]
	if !ok {
		weightMult = 1.0
	}
	unitWeight := areaSqIn * in.Thickness * cfg.DensityLbPerCuIn[in.Material] * weightMult
	totalWeight := unitWeight * float64(in.Quantity)

	// Carriers bill the greater of actual and dimensional weight, with
	// a one-pound floor, rounded up to whole pounds.
	dimWeight := pkg.Length * pkg.Width * pkg.Height / cfg.Shipping.DimDivisor
	billable := math.Ceil(math.Max(math.Max(totalWeight, dimWeight), 1.0))

	return shipEstimate{
		unitWeightLb:  unitWeight,
		totalWeightLb: totalWeight,
		pkg:           pkg,
		baseRate:      cfg.Shipping.BaseFee + cfg.Shipping.PerLbRate*billable,
	}
}
