package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Heather-Herbert/company-address-extractor/internal/db"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List recent persisted search runs",
	Long:  "Lists search runs previously persisted to PostgreSQL. Requires --db-url or the DATABASE_URL environment variable.",
	RunE:  runHistoryCmd,
}

var (
	historyDBURL string
	historyLimit int
)

func init() {
	historyCommand.Flags().StringVar(&historyDBURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	historyCommand.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	dsn := historyDBURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	searches, err := database.ListSearches(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(searches) == 0 {
		fmt.Println("No persisted search runs found.")
		return nil
	}

	for _, s := range searches {
		fmt.Printf("%s  %s  %s [%s]  hits=%d written=%d skipped=%d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.ID,
			s.Location,
			strings.Join(s.SICCodes, ","),
			s.TotalResults,
			s.Written,
			s.Skipped,
			s.OutputFile,
		)
	}

	return nil
}
