// Package main - Entry point for the sundae-pricing CLI
package main

import (
	"os"

	"sundae-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
