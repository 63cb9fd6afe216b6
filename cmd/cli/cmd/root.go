// Package cmd provides the CLI commands for sundae-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sundae-pricing/core/catalog"
	"sundae-pricing/internal/config"
	"sundae-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sundae-pricing",
	Short: "Price Sundae product configurations",
	Long: `sundae-pricing is the pricing configurator for the Sundae platform.

It prices a selected product layer, tier, location count, add-on modules and
watchtower intelligence against the active catalog epoch, applies the
discount stack, and can compare the result against competitor pricing.

Examples:
  sundae-pricing quote --layer core --tier pro --locations 5
  sundae-pricing quote --config-file quote.json --format json
  sundae-pricing enterprise --locations 40 --brands 2
  sundae-pricing catalog validate`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sundae-pricing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(enterpriseCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog returns the active catalog epoch, honoring a configured
// epoch-file override
func loadCatalog() (*catalog.Catalog, error) {
	cfg := config.Get()
	if cfg.Catalog.EpochFile != "" {
		return catalog.LoadEpochFile(cfg.Catalog.EpochFile)
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sundae-pricing version 0.1.0")
	},
}
