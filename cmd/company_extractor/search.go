package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Heather-Herbert/company-address-extractor/internal/config"
	"github.com/Heather-Herbert/company-address-extractor/internal/pipeline"
)

var searchCommand = &cobra.Command{
	Use:   "search",
	Short: "Search companies and write their registered office addresses to a file",
	Long: `Performs one advanced company search and writes the matching registered office
addresses to {location}_{firstSicCode}.txt in the current directory.

Required values can come from a JSON config file (--config), a .env file or
environment variables (API_KEY, LOCATION, SIC_CODES), or flags. Flags win over
environment variables, which win over the config file.`,
	RunE: runSearchCmd,
}

var (
	searchConfigPath string
	searchAPIKey     string
	searchLocation   string
	searchSICCodes   string
	searchBaseURL    string
	searchTimeout    int
	searchDBURL      string
	searchVerbose    bool
)

func init() {
	// Config file flag (processed first)
	searchCommand.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	searchCommand.Flags().StringVarP(&searchLocation, "location", "l", "", "Location to search for companies (defaults to LOCATION env var)")
	searchCommand.Flags().StringVarP(&searchSICCodes, "sic-codes", "s", "", "Comma-separated SIC codes to filter by (defaults to SIC_CODES env var)")
	searchCommand.Flags().StringVar(&searchAPIKey, "api-key", "", "Companies House API key (defaults to API_KEY env var)")
	searchCommand.Flags().StringVar(&searchBaseURL, "base-url", "", "API base URL override")
	searchCommand.Flags().IntVar(&searchTimeout, "timeout", 0, "HTTP timeout in seconds")
	searchCommand.Flags().StringVar(&searchDBURL, "db-url", "", "PostgreSQL connection URL for run persistence (optional, defaults to DATABASE_URL env var)")
	searchCommand.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(searchCommand)
}

// applyEnvOverrides overlays set environment variables onto config-file
// values. Flag overrides run afterwards, so the resulting precedence is
// config file < environment < flags. getenv is injected so tests do not
// depend on the process environment.
func applyEnvOverrides(cfg config.Config, getenv func(string) string) config.Config {
	if v := getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := getenv("LOCATION"); v != "" {
		cfg.Location = v
	}
	if v := getenv("SIC_CODES"); v != "" {
		cfg.SICCodes = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	return cfg
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if searchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(searchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if searchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", searchConfigPath)
		}
	}

	// Step 2: Overlay environment variables on config-file values
	cfg = applyEnvOverrides(cfg, os.Getenv)

	// Step 3: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = searchAPIKey
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = searchLocation
	}
	if cmd.Flags().Changed("sic-codes") {
		cfg.SICCodes = searchSICCodes
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = searchBaseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = searchTimeout
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = searchDBURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = searchVerbose
	}

	// Step 4: Apply defaults for anything still unset
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 5: Validate required fields
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.Run(ctx, pipeline.Options{
		APIKey:      cfg.APIKey,
		Location:    cfg.Location,
		SICCodes:    config.SplitSICCodes(cfg.SICCodes),
		BaseURL:     cfg.BaseURL,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
	})
}
