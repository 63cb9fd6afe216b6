// Package cmd - compare command
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"sundae-pricing/core/compare"
	"sundae-pricing/core/quote"
)

var compareFormat string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a configuration against competitor pricing",
	Long: `Price a configuration and estimate what registered competitors would
charge for the same location count and module selection.

Examples:
  sundae-pricing compare --layer core --tier pro --locations 5
  sundae-pricing compare --layer core --tier pro --locations 10 --module labor`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "output format (table, json)")
	compareCmd.Flags().StringVar(&quoteLayer, "layer", "core", "product layer (report, core)")
	compareCmd.Flags().StringVar(&quoteTier, "tier", "", "tier id")
	compareCmd.Flags().IntVar(&quoteLocations, "locations", 1, "location count")
	compareCmd.Flags().StringSliceVar(&quoteModules, "module", nil, "add-on module id (repeatable)")
	compareCmd.Flags().StringSliceVar(&quoteWatchtower, "watchtower", nil, "watchtower selection (repeatable)")
	compareCmd.Flags().StringVar(&quoteClientType, "client-type", "independent", "client type")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	cfg, err := buildConfiguration()
	if err != nil {
		return err
	}

	result, err := quote.Compose(cat, cfg)
	if err != nil {
		return err
	}

	comparisons := compare.Compare(compare.Registry(), result.Total, cfg.Locations, cfg.Modules)

	if compareFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(comparisons)
	}

	printComparisons(comparisons)
	return nil
}
