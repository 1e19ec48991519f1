package quote

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"plate-quote/core/pricing"
	"plate-quote/internal/errors"
)

func effectiveConfig(t *testing.T) *pricing.Config {
	t.Helper()
	cfg, err := pricing.Resolve(pricing.Default(), nil)
	if err != nil {
		t.Fatalf("resolving baseline: %v", err)
	}
	return cfg
}

// referenceInputs is the scenario the original model's self-test was
// recorded against. The expected numbers in the golden test below are
// its printed reference values.
func referenceInputs() Inputs {
	return Inputs{
		Quantity:             1,
		Material:             "304",
		Thickness:            0.25,
		HandleWidth:          2,
		HandleLengthFromBore: 18,
		PaddleDia:            6,
		BoreDia:              2,
		BoreTolerance:        0.005,
		Chamfer:              true,
		ShipsInDays:          21,
	}
}

func wantFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculateGoldenReference(t *testing.T) {
	cfg := effectiveConfig(t)

	res, err := Calculate(referenceInputs(), cfg)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	wantFloat(t, "AreaSqIn", res.AreaSqIn, 126)
	wantFloat(t, "LinearInches", res.LinearInches, 47.42)

	wantFloat(t, "MaterialCost", res.MaterialCost, 53.55)
	wantFloat(t, "CuttingCost", res.CuttingCost, 39.17)
	wantFloat(t, "BoreMachiningCost", res.BoreMachiningCost, 67.29)
	wantFloat(t, "ChamferCost", res.ChamferCost, 67.29)
	wantFloat(t, "LoadCost", res.LoadCost, 15)
	wantFloat(t, "InspectionCost", res.InspectionCost, 15)
	wantFloat(t, "SubtotalPreMultiplier", res.SubtotalPreMultiplier, 257.29)

	wantFloat(t, "LeadTimeMultiplier", res.LeadTimeMultiplier, 1.0)
	wantFloat(t, "QuantityDiscountMultiplier", res.QuantityDiscountMultiplier, 1.0)
	wantFloat(t, "UnitPrice", res.UnitPrice, 257.29)
	wantFloat(t, "TotalPrice", res.TotalPrice, 257.29)
	if res.UnitPriceCents != 25729 || res.TotalPriceCents != 25729 {
		t.Errorf("cents = %d / %d, want 25729 / 25729", res.UnitPriceCents, res.TotalPriceCents)
	}

	wantFloat(t, "EstimatedUnitWeightLb", res.EstimatedUnitWeightLb, 9.1)
	wantFloat(t, "EstimatedTotalWeightLb", res.EstimatedTotalWeightLb, 9.1)
	wantFloat(t, "Package.Length", res.EstimatedPackageIn.Length, 25)
	wantFloat(t, "Package.Width", res.EstimatedPackageIn.Width, 10)
	wantFloat(t, "Package.Height", res.EstimatedPackageIn.Height, 1)

	// billable = ceil(max(9.1035, 250/139, 1)) = 10 lb
	// ground = 12.50 + 0.85*10 = 21.00
	if res.Shipping.GroundCents != 2100 {
		t.Errorf("GroundCents = %d, want 2100", res.Shipping.GroundCents)
	}
	if res.Shipping.TwoDayCents != 3885 {
		t.Errorf("TwoDayCents = %d, want 3885", res.Shipping.TwoDayCents)
	}
	if res.Shipping.OvernightCents != 5985 {
		t.Errorf("OvernightCents = %d, want 5985", res.Shipping.OvernightCents)
	}

	if res.HandleLabel != DefaultHandleLabel {
		t.Errorf("HandleLabel = %q, want %q", res.HandleLabel, DefaultHandleLabel)
	}
	if res.ChamferWidth == nil || *res.ChamferWidth != DefaultChamferWidthIn {
		t.Errorf("ChamferWidth = %v, want %v", res.ChamferWidth, DefaultChamferWidthIn)
	}
}

func TestCalculateDeterminism(t *testing.T) {
	cfg := effectiveConfig(t)

	first, err := Calculate(referenceInputs(), cfg)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := Calculate(referenceInputs(), cfg)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestQuantityMonotonicity(t *testing.T) {
	cfg := effectiveConfig(t)

	prevTotal := 0.0
	prevUnit := math.Inf(1)
	for qty := 1; qty <= 60; qty++ {
		in := referenceInputs()
		in.Quantity = qty

		res, err := Calculate(in, cfg)
		if err != nil {
			t.Fatalf("qty=%d: %v", qty, err)
		}
		if res.TotalPrice < prevTotal {
			t.Errorf("qty=%d: total %v dropped below %v", qty, res.TotalPrice, prevTotal)
		}
		if res.UnitPrice > prevUnit {
			t.Errorf("qty=%d: unit %v rose above %v", qty, res.UnitPrice, prevUnit)
		}
		prevTotal = res.TotalPrice
		prevUnit = res.UnitPrice
	}
}

func TestChamferTogglingIsolated(t *testing.T) {
	cfg := effectiveConfig(t)

	with := referenceInputs()
	without := referenceInputs()
	without.Chamfer = false

	resWith, err := Calculate(with, cfg)
	if err != nil {
		t.Fatalf("with chamfer: %v", err)
	}
	resWithout, err := Calculate(without, cfg)
	if err != nil {
		t.Fatalf("without chamfer: %v", err)
	}

	if resWithout.ChamferCost != 0 {
		t.Errorf("ChamferCost without chamfer = %v, want 0", resWithout.ChamferCost)
	}
	if resWithout.ChamferWidth != nil {
		t.Errorf("ChamferWidth without chamfer = %v, want nil", *resWithout.ChamferWidth)
	}
	if resWith.ChamferCost == 0 {
		t.Error("ChamferCost with chamfer should be non-zero")
	}

	// Every other cost component must be identical.
	pairs := []struct {
		name       string
		with, sans float64
	}{
		{"AreaSqIn", resWith.AreaSqIn, resWithout.AreaSqIn},
		{"LinearInches", resWith.LinearInches, resWithout.LinearInches},
		{"MaterialCost", resWith.MaterialCost, resWithout.MaterialCost},
		{"CuttingCost", resWith.CuttingCost, resWithout.CuttingCost},
		{"BoreMachiningCost", resWith.BoreMachiningCost, resWithout.BoreMachiningCost},
		{"LoadCost", resWith.LoadCost, resWithout.LoadCost},
		{"InspectionCost", resWith.InspectionCost, resWithout.InspectionCost},
		{"EstimatedUnitWeightLb", resWith.EstimatedUnitWeightLb, resWithout.EstimatedUnitWeightLb},
	}
	for _, p := range pairs {
		if p.with != p.sans {
			t.Errorf("%s differs with chamfer toggle: %v vs %v", p.name, p.with, p.sans)
		}
	}
}

func TestValidationRejections(t *testing.T) {
	cfg := effectiveConfig(t)

	cases := []struct {
		name    string
		mutate  func(*Inputs)
		inError string
	}{
		{"zero quantity", func(in *Inputs) { in.Quantity = 0 }, "quantity"},
		{"unknown material", func(in *Inputs) { in.Material = "Unobtainium" }, "material"},
		{"unpriced thickness", func(in *Inputs) { in.Thickness = 0.3 }, "thickness"},
		{"bad tolerance", func(in *Inputs) { in.BoreTolerance = 0.05 }, "bore_tolerance"},
		{"bad lead time", func(in *Inputs) { in.ShipsInDays = 3 }, "ships_in_days"},
		{"handle equals radius", func(in *Inputs) { in.HandleLengthFromBore = 3 }, "handle_length_from_bore"},
		{"paddle over cap", func(in *Inputs) {
			in.PaddleDia = 50
			in.HandleLengthFromBore = 30
		}, "paddle_dia"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := referenceInputs()
			tc.mutate(&in)

			res, err := Calculate(in, cfg)
			if err == nil {
				t.Fatalf("expected validation error, got result %+v", res)
			}
			if !errors.IsType(err, errors.TypeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.inError) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.inError)
			}
		})
	}
}

func TestValidationBoreEqualsPaddle(t *testing.T) {
	cfg := effectiveConfig(t)

	in := referenceInputs()
	in.BoreDia = in.PaddleDia

	_, err := Calculate(in, cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"bore_dia", "paddle_dia"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not reference %s", err.Error(), field)
		}
	}
}

func TestValidationDeterministic(t *testing.T) {
	cfg := effectiveConfig(t)

	in := referenceInputs()
	in.Quantity = 0
	in.Material = "Unobtainium"
	in.BoreDia = in.PaddleDia

	_, first := Calculate(in, cfg)
	_, second := Calculate(in, cfg)
	if first == nil || second == nil {
		t.Fatal("expected validation errors")
	}
	if first.Error() != second.Error() {
		t.Errorf("same bad input produced different errors:\n%q\n%q", first, second)
	}
}

func TestNonFiniteNormalizedToConfigError(t *testing.T) {
	cfg := effectiveConfig(t)
	cfg.MillSpeedIPM = 0 // labor_rate / 0 -> Inf

	_, err := Calculate(referenceInputs(), cfg)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestMissingDensityIsConfigError(t *testing.T) {
	cfg := effectiveConfig(t)
	delete(cfg.DensityLbPerCuIn, "304")

	_, err := Calculate(referenceInputs(), cfg)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestShippingScalesWithQuantity(t *testing.T) {
	cfg := effectiveConfig(t)

	single, err := Calculate(referenceInputs(), cfg)
	if err != nil {
		t.Fatalf("qty=1: %v", err)
	}

	for _, qty := range []int{2, 4, 10} {
		in := referenceInputs()
		in.Quantity = qty

		res, err := Calculate(in, cfg)
		if err != nil {
			t.Fatalf("qty=%d: %v", qty, err)
		}

		wantHeight := round2(1.0 + float64(qty-1)*in.Thickness)
		if res.EstimatedPackageIn.Height != wantHeight {
			t.Errorf("qty=%d: height = %v, want %v", qty, res.EstimatedPackageIn.Height, wantHeight)
		}
		if res.EstimatedPackageIn.Length != single.EstimatedPackageIn.Length ||
			res.EstimatedPackageIn.Width != single.EstimatedPackageIn.Width {
			t.Errorf("qty=%d: footprint changed: %+v", qty, res.EstimatedPackageIn)
		}

		wantWeight := round2(126 * 0.25 * 0.289 * float64(qty))
		if res.EstimatedTotalWeightLb != wantWeight {
			t.Errorf("qty=%d: total weight = %v, want %v", qty, res.EstimatedTotalWeightLb, wantWeight)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	in := Inputs{Chamfer: true, HandleLabel: "   "}
	norm := in.Normalize()
	if norm.HandleLabel != DefaultHandleLabel {
		t.Errorf("HandleLabel = %q, want %q", norm.HandleLabel, DefaultHandleLabel)
	}
	if norm.ChamferWidth == nil || *norm.ChamferWidth != DefaultChamferWidthIn {
		t.Errorf("ChamferWidth = %v, want default", norm.ChamferWidth)
	}

	w := 0.1
	in = Inputs{Chamfer: false, ChamferWidth: &w, HandleLabel: "Port side"}
	norm = in.Normalize()
	if norm.ChamferWidth != nil {
		t.Error("ChamferWidth should be nil when chamfer is off")
	}
	if norm.HandleLabel != "Port side" {
		t.Errorf("HandleLabel = %q, want %q", norm.HandleLabel, "Port side")
	}

	custom := 0.125
	in = Inputs{Chamfer: true, ChamferWidth: &custom}
	norm = in.Normalize()
	if norm.ChamferWidth == nil || *norm.ChamferWidth != custom {
		t.Errorf("ChamferWidth = %v, want %v", norm.ChamferWidth, custom)
	}
}
