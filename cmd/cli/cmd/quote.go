// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sundae-pricing/core/catalog"
	"sundae-pricing/core/compare"
	"sundae-pricing/core/quote"
	"sundae-pricing/core/session"
	"sundae-pricing/internal/config"
)

var (
	quoteFile       string
	quoteFormat     string
	quoteLayer      string
	quoteTier       string
	quoteLocations  int
	quoteModules    []string
	quoteWatchtower []string
	quoteClientType string
	quoteEarly      bool
	quoteFranchise  bool
	quoteBrands     int
	quoteDiscount   float64
	quoteCompare    bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a product configuration",
	Long: `Price a configuration against the active catalog epoch.

The configuration comes either from flags or from a JSON file with the same
shape as the /quote API request.

Examples:
  sundae-pricing quote --layer core --tier pro --locations 5
  sundae-pricing quote --layer core --tier pro --locations 5 --module labor --watchtower bundle
  sundae-pricing quote --config-file quote.json --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteFile, "config-file", "", "JSON file holding the configuration")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (table, json)")
	quoteCmd.Flags().StringVar(&quoteLayer, "layer", "core", "product layer (report, core)")
	quoteCmd.Flags().StringVar(&quoteTier, "tier", "", "tier id")
	quoteCmd.Flags().IntVar(&quoteLocations, "locations", 1, "location count")
	quoteCmd.Flags().StringSliceVar(&quoteModules, "module", nil, "add-on module id (repeatable)")
	quoteCmd.Flags().StringSliceVar(&quoteWatchtower, "watchtower", nil, "watchtower selection (repeatable)")
	quoteCmd.Flags().StringVar(&quoteClientType, "client-type", "independent", "client type")
	quoteCmd.Flags().BoolVar(&quoteEarly, "early-adopter", false, "apply early-adopter terms")
	quoteCmd.Flags().BoolVar(&quoteFranchise, "franchise", false, "client is a franchise")
	quoteCmd.Flags().IntVar(&quoteBrands, "brands", 1, "brand count")
	quoteCmd.Flags().Float64Var(&quoteDiscount, "discount", 0, "negotiated discount percent")
	quoteCmd.Flags().BoolVar(&quoteCompare, "compare", false, "include competitor comparison")
}

func runQuote(cmd *cobra.Command, args []string) error {
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

	format := quoteFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}

	var comparisons []compare.Comparison
	if quoteCompare || config.Get().Output.ShowComparisons {
		comparisons = compare.Compare(compare.Registry(), result.Total, cfg.Locations, cfg.Modules)
	}

	if format == "json" {
		out := map[string]interface{}{"result": result}
		if comparisons != nil {
			out["comparisons"] = comparisons
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printQuoteTable(result)
	printComparisons(comparisons)
	return nil
}

func buildConfiguration() (session.Configuration, error) {
	if quoteFile != "" {
		data, err := os.ReadFile(quoteFile)
		if err != nil {
			return session.Configuration{}, err
		}
		var cfg session.Configuration
		if err := json.Unmarshal(data, &cfg); err != nil {
			return session.Configuration{}, err
		}
		return cfg, nil
	}

	profile := session.ClientProfile{
		Type:           quoteClientType,
		IsEarlyAdopter: quoteEarly,
		IsFranchise:    quoteFranchise,
		BrandCount:     quoteBrands,
	}
	if quoteDiscount > 0 {
		profile.CustomDiscountPercent = &quoteDiscount
	}

	return session.Configuration{
		Layer:         catalog.Layer(quoteLayer),
		Tier:          quoteTier,
		Locations:     quoteLocations,
		Modules:       quoteModules,
		Watchtower:    quoteWatchtower,
		ClientProfile: profile,
	}, nil
}

func printQuoteTable(result quote.PriceResult) {
	if config.Get().Output.ShowBreakdown {
		fmt.Println("Breakdown:")
		for _, item := range result.Breakdown {
			fmt.Printf("  %-30s %12s", item.Item, item.Price)
			if item.Note != "" {
				fmt.Printf("  (%s)", item.Note)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	fmt.Printf("Subtotal:       $%s\n", result.Subtotal.StringFixed(2))
	for _, d := range result.DiscountsApplied {
		fmt.Printf("  %-28s %12s  (%s%%)\n", d.Name, "$"+d.Amount.StringFixed(2), d.Percent)
	}
	fmt.Printf("Monthly total:  $%s\n", result.Total.StringFixed(2))
	fmt.Printf("Per location:   %s\n", result.PerLocation)
	fmt.Printf("Annual total:   $%s\n", result.AnnualTotal.StringFixed(2))
	fmt.Printf("AI credits:     %d\n", result.AICreditsTotal)
	fmt.Printf("AI seats:       %d\n", result.AISeatsTotal)
}

func printComparisons(comparisons []compare.Comparison) {
	if len(comparisons) == 0 {
		return
	}

	fmt.Println("\nCompetitor comparison:")
	for _, c := range comparisons {
		if !c.Cost.Priceable() {
			note := ""
			if len(c.Cost.Notes) > 0 {
				note = c.Cost.Notes[0]
			}
			fmt.Printf("  %-20s not publicly priceable: %s\n", c.Competitor, note)
			continue
		}
		fmt.Printf("  %-20s $%s/mo", c.Competitor, c.Cost.Monthly.StringFixed(2))
		if c.FirstYearSavings != nil {
			fmt.Printf("  first-year savings $%s", c.FirstYearSavings.StringFixed(2))
		}
		fmt.Println()
	}
}
