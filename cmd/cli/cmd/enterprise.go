// Package cmd - enterprise command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sundae-pricing/core/pricing"
)

var (
	enterpriseLocations int
	enterpriseBrands    int
	enterpriseFormat    string
)

// enterpriseCmd represents the enterprise command
var enterpriseCmd = &cobra.Command{
	Use:   "enterprise",
	Short: "Recommend an enterprise pricing model",
	Long: `Compute both enterprise pricing models (flat volume tiers and banded
org-license rates) for a location count and recommend one.

Examples:
  sundae-pricing enterprise --locations 40
  sundae-pricing enterprise --locations 120 --brands 3`,
	RunE: runEnterprise,
}

func init() {
	enterpriseCmd.Flags().IntVar(&enterpriseLocations, "locations", 30, "location count")
	enterpriseCmd.Flags().IntVar(&enterpriseBrands, "brands", 1, "brand count")
	enterpriseCmd.Flags().StringVarP(&enterpriseFormat, "format", "f", "table", "output format (table, json)")
}

func runEnterprise(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	rec := pricing.RecommendEnterpriseModel(cat, enterpriseLocations, enterpriseBrands)

	if enterpriseFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("Volume model:      %s\n", rec.Volume)
	fmt.Printf("Org-license model: %s\n", rec.OrgLicense)
	fmt.Printf("Recommended:       %s (%s)\n", rec.Model, rec.Reason)
	return nil
}
