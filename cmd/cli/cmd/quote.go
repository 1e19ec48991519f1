// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plate-quote/core/pricing"
	"plate-quote/core/quote"
	"plate-quote/internal/config"
)

var (
	outputFormat string
	inputsFile   string

	flagQuantity     int
	flagMaterial     string
	flagThickness    float64
	flagHandleWidth  float64
	flagHandleLength float64
	flagPaddleDia    float64
	flagBoreDia      float64
	flagTolerance    float64
	flagChamfer      bool
	flagChamferWidth float64
	flagShipsInDays  int
	flagLabel        string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a price quote for one part",
	Long: `Compute a deterministic price quote from part geometry and process
parameters, either from flags or from a JSON inputs file.

Examples:
  plate-quote quote --material 304 --thickness 0.25 --paddle-dia 6 \
      --bore-dia 2 --handle-width 2 --handle-length 18
  plate-quote quote --inputs part.json --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	quoteCmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "JSON file with quote inputs (flags are ignored)")

	quoteCmd.Flags().IntVarP(&flagQuantity, "quantity", "q", 1, "number of units")
	quoteCmd.Flags().StringVarP(&flagMaterial, "material", "m", "", "material (e.g. 304, 316, \"Carbon Steel\")")
	quoteCmd.Flags().Float64VarP(&flagThickness, "thickness", "t", 0, "plate thickness in inches")
	quoteCmd.Flags().Float64Var(&flagHandleWidth, "handle-width", 0, "handle width in inches")
	quoteCmd.Flags().Float64Var(&flagHandleLength, "handle-length", 0, "handle length from bore in inches")
	quoteCmd.Flags().Float64Var(&flagPaddleDia, "paddle-dia", 0, "paddle diameter in inches")
	quoteCmd.Flags().Float64Var(&flagBoreDia, "bore-dia", 0, "bore diameter in inches")
	quoteCmd.Flags().Float64Var(&flagTolerance, "tolerance", 0.005, "bore tolerance class")
	quoteCmd.Flags().BoolVar(&flagChamfer, "chamfer", false, "chamfer the bore edge")
	quoteCmd.Flags().Float64Var(&flagChamferWidth, "chamfer-width", 0, "chamfer width in inches (default when omitted)")
	quoteCmd.Flags().IntVar(&flagShipsInDays, "ships-in-days", 0, "lead time in days (default from config)")
	quoteCmd.Flags().StringVar(&flagLabel, "label", "", "optional handle label")
}

func runQuote(cmd *cobra.Command, args []string) error {
	provider := pricing.NewFileProvider(pricing.Default(), config.Get().Knobs.Path)
	cfg, err := provider.Effective()
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cfg)
	if err != nil {
		return err
	}

	result, err := quote.Calculate(inputs, cfg)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printQuote(result)
	return nil
}

func collectInputs(cfg *pricing.Config) (quote.Inputs, error) {
	if inputsFile != "" {
		data, err := os.ReadFile(inputsFile)
		if err != nil {
			return quote.Inputs{}, fmt.Errorf("reading inputs file: %w", err)
		}
		var in quote.Inputs
		if err := json.Unmarshal(data, &in); err != nil {
			return quote.Inputs{}, fmt.Errorf("parsing inputs file: %w", err)
		}
		if in.ShipsInDays == 0 {
			in.ShipsInDays = cfg.DefaultLeadTimeDays
		}
		return in, nil
	}

	in := quote.Inputs{
		Quantity:             flagQuantity,
		Material:             flagMaterial,
		Thickness:            flagThickness,
		HandleWidth:          flagHandleWidth,
		HandleLengthFromBore: flagHandleLength,
		PaddleDia:            flagPaddleDia,
		BoreDia:              flagBoreDia,
		BoreTolerance:        flagTolerance,
		Chamfer:              flagChamfer,
		ShipsInDays:          flagShipsInDays,
		HandleLabel:          flagLabel,
	}
	if in.ShipsInDays == 0 {
		in.ShipsInDays = cfg.DefaultLeadTimeDays
	}
	if flagChamfer && flagChamferWidth > 0 {
		w := flagChamferWidth
		in.ChamferWidth = &w
	}
	return in, nil
}

func printQuote(r *quote.Result) {
	fmt.Println("Quote")
	fmt.Println("=====")
	fmt.Printf("  Area:              %.4f sq in\n", r.AreaSqIn)
	fmt.Printf("  Cut length:        %.4f in\n", r.LinearInches)
	fmt.Println()
	fmt.Printf("  Material:          $%.2f\n", r.MaterialCost)
	fmt.Printf("  Cutting:           $%.2f\n", r.CuttingCost)
	fmt.Printf("  Bore machining:    $%.2f\n", r.BoreMachiningCost)
	fmt.Printf("  Chamfer:           $%.2f\n", r.ChamferCost)
	fmt.Printf("  Load:              $%.2f\n", r.LoadCost)
	fmt.Printf("  Inspection:        $%.2f\n", r.InspectionCost)
	fmt.Printf("  Subtotal:          $%.2f\n", r.SubtotalPreMultiplier)
	fmt.Println()
	fmt.Printf("  Lead-time mult:    %.2f\n", r.LeadTimeMultiplier)
	fmt.Printf("  Qty discount:      %.2f\n", r.QuantityDiscountMultiplier)
	fmt.Printf("  Unit price:        $%.2f\n", r.UnitPrice)
	fmt.Printf("  Quantity:          %d\n", r.Quantity)
	fmt.Printf("  Total:             $%.2f\n", r.TotalPrice)
	fmt.Println()
	fmt.Printf("  Est. weight:       %.2f lb (unit %.2f lb)\n", r.EstimatedTotalWeightLb, r.EstimatedUnitWeightLb)
	fmt.Printf("  Est. package:      %.2f x %.2f x %.2f in\n",
		r.EstimatedPackageIn.Length, r.EstimatedPackageIn.Width, r.EstimatedPackageIn.Height)
	fmt.Printf("  Shipping:          ground $%.2f / 2-day $%.2f / overnight $%.2f\n",
		float64(r.Shipping.GroundCents)/100,
		float64(r.Shipping.TwoDayCents)/100,
		float64(r.Shipping.OvernightCents)/100)
	if r.HandleLabel != quote.DefaultHandleLabel {
		fmt.Printf("  Label:             %s\n", r.HandleLabel)
	}
}
