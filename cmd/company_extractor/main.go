// Package main provides the entry point for the company address extractor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "company_extractor",
	Short: "Extract company addresses from the Companies House API",
	Long:  "company_extractor searches the Companies House advanced company search API for active companies matching a location and SIC codes, and writes their registered office addresses to a text file.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
