package quote

import (
	"math"

	"github.com/shopspring/decimal"

	"plate-quote/core/pricing"
	"plate-quote/internal/errors"
)

// piApprox is 3.14, not math.Pi. The geometry formulas were lifted from
// the spreadsheet the rate tables were tuned against, and that sheet
// used 3.14; switching to the exact constant would silently change
// every historical quote.
const piApprox = 3.14

// Calculate prices one part. It normalizes and validates the inputs
// against the effective configuration, derives geometry, itemizes the
// process costs, applies the lead-time and quantity-discount
// multipliers, and attaches the shipping estimate.
//
// The configuration must already be resolved (pricing.Resolve); the
// engine treats holes in it as configuration errors, never as
// validation errors, since the caller did not control them.
func Calculate(in Inputs, cfg *pricing.Config) (*Result, error) {
	if cfg == nil {
		return nil, errors.Config("nil pricing configuration")
	}
	if len(cfg.PricePerSqIn) == 0 {
		return nil, errors.Config("effective price table is empty")
	}
	if len(cfg.LeadTimeMultiplier) == 0 {
		return nil, errors.Config("effective lead-time table is empty")
	}
	if len(cfg.DiscountTiers) == 0 {
		return nil, errors.Config("quantity discount tiers are empty")
	}

	in = in.Normalize()
	if err := in.validate(cfg); err != nil {
		return nil, err
	}
	if _, ok := cfg.DensityLbPerCuIn[in.Material]; !ok {
		return nil, errors.Configf("no density for material %q", in.Material)
	}

	// Geometry.
	paddleRadius := in.PaddleDia / 2
	areaSqIn := in.PaddleDia * (in.HandleLengthFromBore + paddleRadius)
	linearInches := in.HandleWidth + in.HandleLengthFromBore*2 + paddleRadius*piApprox

	// Itemized per-unit costs.
	materialCost := areaSqIn * cfg.PricePerSqIn[in.Material][in.Thickness]
	cuttingCost := linearInches * cfg.CuttingRatePerLinearIn
	boreCost := (piApprox * in.BoreDia) * (cfg.LaborRatePerHour / cfg.MillSpeedIPM) * 2

	chamferCost := 0.0
	if in.Chamfer {
		chamferCost = (piApprox * in.BoreDia) * (cfg.LaborRatePerHour / cfg.ChamferSpeedIPM) * 2
	}

	loadCost := (cfg.LaborRatePerHour / 60) * cfg.LoadTimeMins
	inspectionCost := (cfg.LaborRatePerHour / 60) * cfg.InspectionMinsByTol[in.BoreTolerance]

	subtotal := materialCost + cuttingCost + boreCost + chamferCost + loadCost + inspectionCost

	// Multipliers.
	leadMult := cfg.LeadTimeMultiplier[in.ShipsInDays]
	unitPreDiscount := subtotal * leadMult

	qtyMult, err := DiscountMultiplier(cfg.DiscountTiers, in.Quantity)
	if err != nil {
		return nil, err
	}
	unitPrice := unitPreDiscount * qtyMult
	totalPrice := unitPrice * float64(in.Quantity)

	ship := estimateShipping(in, cfg, areaSqIn, paddleRadius)

	// A zero or negative rate/speed in the configuration surfaces here
	// as NaN or Inf. That is a provisioning fault, not a caller fault.
	if !allFinite(
		subtotal, unitPreDiscount, unitPrice, totalPrice,
		ship.unitWeightLb, ship.totalWeightLb, ship.baseRate,
		ship.pkg.Length, ship.pkg.Width, ship.pkg.Height,
	) {
		return nil, errors.Config("calculation produced a non-finite value; check process rates and shipping constants")
	}

	return &Result{
		AreaSqIn:     round4(areaSqIn),
		LinearInches: round4(linearInches),

		MaterialCost:          round2(materialCost),
		CuttingCost:           round2(cuttingCost),
		BoreMachiningCost:     round2(boreCost),
		ChamferCost:           round2(chamferCost),
		LoadCost:              round2(loadCost),
		InspectionCost:        round2(inspectionCost),
		SubtotalPreMultiplier: round2(subtotal),

		LeadTimeMultiplier:         leadMult,
		UnitPricePreDiscount:       round2(unitPreDiscount),
		QuantityDiscountMultiplier: qtyMult,
		UnitPrice:                  round2(unitPrice),
		Quantity:                   in.Quantity,
		TotalPrice:                 round2(totalPrice),
		UnitPriceCents:             cents(unitPrice),
		TotalPriceCents:            cents(totalPrice),

		EstimatedUnitWeightLb:  round2(ship.unitWeightLb),
		EstimatedTotalWeightLb: round2(ship.totalWeightLb),
		EstimatedPackageIn: PackageDims{
			Length: round2(ship.pkg.Length),
			Width:  round2(ship.pkg.Width),
			Height: round2(ship.pkg.Height),
		},
		Shipping: ShippingRates{
			GroundCents:    cents(ship.baseRate),
			TwoDayCents:    cents(ship.baseRate * cfg.Shipping.TwoDayMultiplier),
			OvernightCents: cents(ship.baseRate * cfg.Shipping.OvernightMultiplier),
		},

		HandleLabel:  in.HandleLabel,
		ChamferWidth: in.ChamferWidth,
	}, nil
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// round2 rounds a display value to two decimals, half away from zero.
func round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// round4 rounds a geometry value to four decimals.
func round4(x float64) float64 {
	return decimal.NewFromFloat(x).Round(4).InexactFloat64()
}

// cents converts dollars to integer cents, round half up, so unit and
// total never drift by a cent between representations.
func cents(x float64) int64 {
	return decimal.NewFromFloat(x).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
