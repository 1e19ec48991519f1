// Package cmd - config commands
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"plate-quote/core/pricing"
	"plate-quote/internal/config"
)

// configCmd manages pricing configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pricing configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective pricing configuration",
	Long: `Show the effective pricing configuration: the baseline defaults with
the current override file (if any) resolved in, exactly as the engine
would see it.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	provider := pricing.NewFileProvider(pricing.Default(), config.Get().Knobs.Path)
	cfg, err := provider.Effective()
	if err != nil {
		return err
	}

	fmt.Println("Materials")
	fmt.Println("=========")
	materials := make([]string, 0, len(cfg.PricePerSqIn))
	for mat := range cfg.PricePerSqIn {
		materials = append(materials, mat)
	}
	sort.Strings(materials)
	for _, mat := range materials {
		prices := cfg.PricePerSqIn[mat]
		thicknesses := make([]float64, 0, len(prices))
		for t := range prices {
			thicknesses = append(thicknesses, t)
		}
		sort.Float64s(thicknesses)
		fmt.Printf("  %-14s", mat)
		for _, t := range thicknesses {
			fmt.Printf("  %.3f\" = $%.3f/sq in", t, prices[t])
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Lead times")
	fmt.Println("==========")
	days := make([]int, 0, len(cfg.LeadTimeMultiplier))
	for d := range cfg.LeadTimeMultiplier {
		days = append(days, d)
	}
	sort.Ints(days)
	for _, d := range days {
		marker := ""
		if d == cfg.DefaultLeadTimeDays {
			marker = "  (default)"
		}
		fmt.Printf("  %2d days  x%.2f%s\n", d, cfg.LeadTimeMultiplier[d], marker)
	}

	fmt.Println()
	fmt.Println("Quantity discounts")
	fmt.Println("==================")
	for _, tier := range cfg.DiscountTiers {
		fmt.Printf("  %3d+  x%.2f\n", tier.MinQty, tier.Multiplier)
	}

	fmt.Println()
	fmt.Println("Process rates")
	fmt.Println("=============")
	fmt.Printf("  Cutting:     $%.3f/linear in\n", cfg.CuttingRatePerLinearIn)
	fmt.Printf("  Labor:       $%.0f/hr\n", cfg.LaborRatePerHour)
	fmt.Printf("  Mill speed:  %.0f ipm\n", cfg.MillSpeedIPM)
	fmt.Printf("  Load time:   %.0f min\n", cfg.LoadTimeMins)

	fmt.Println()
	fmt.Println("Shipping policy")
	fmt.Println("===============")
	fmt.Printf("  Dim divisor: %.0f\n", cfg.Shipping.DimDivisor)
	fmt.Printf("  Ground:      $%.2f + $%.2f/lb\n", cfg.Shipping.BaseFee, cfg.Shipping.PerLbRate)
	fmt.Printf("  2-day:       x%.2f\n", cfg.Shipping.TwoDayMultiplier)
	fmt.Printf("  Overnight:   x%.2f\n", cfg.Shipping.OvernightMultiplier)

	return nil
}
