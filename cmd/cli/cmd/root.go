// Package cmd provides the CLI commands for plate-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plate-quote/internal/config"
	"plate-quote/internal/logging"
)

var (
	cfgFile   string
	knobsFile string
	verbose   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plate-quote",
	Short: "Price quotes for custom-manufactured plates",
	Long: `plate-quote computes deterministic price quotes for a custom plate
(a circular paddle head with a center bore and a handle) from its
geometry and process parameters.

Examples:
  plate-quote quote --material 304 --thickness 0.25 --paddle-dia 6 \
      --bore-dia 2 --handle-width 2 --handle-length 18
  plate-quote quote --inputs part.json --format json
  plate-quote config show`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.plate-quote/config.json)")
	rootCmd.PersistentFlags().StringVar(&knobsFile, "knobs", "", "pricing override file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if knobsFile != "" {
		cfg.Knobs.Path = knobsFile
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("plate-quote version 1.0.0")
	},
}
