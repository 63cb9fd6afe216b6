// Package cmd - catalog commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sundae-pricing/core/catalog"
)

// catalogCmd groups catalog inspection commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the pricing catalog",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active catalog epoch as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [epoch-file]",
	Short: "Validate the built-in epoch or an HCL epoch file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cat *catalog.Catalog
		var err error

		if len(args) == 1 {
			cat, err = catalog.LoadEpochFile(args[0])
		} else {
			cat = catalog.Default()
			err = cat.Validate()
		}
		if err != nil {
			return err
		}

		fmt.Printf("catalog epoch %s is valid (%d tiers, %d modules, %d watchtower modules)\n",
			cat.Epoch, len(cat.Tiers), len(cat.Modules), len(cat.WatchtowerModules))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
