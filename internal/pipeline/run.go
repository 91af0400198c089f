// Package pipeline provides the high-level orchestration for a company
// address extraction run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Heather-Herbert/company-address-extractor/internal/auth"
	"github.com/Heather-Herbert/company-address-extractor/internal/companieshouse"
	"github.com/Heather-Herbert/company-address-extractor/internal/db"
	"github.com/Heather-Herbert/company-address-extractor/internal/formatting"
	"github.com/Heather-Herbert/company-address-extractor/internal/observability"
	"github.com/Heather-Herbert/company-address-extractor/internal/output"
)

// Options holds configuration for running the extraction pipeline
type Options struct {
	APIKey      string
	Location    string
	SICCodes    []string
	BaseURL     string
	Timeout     time.Duration
	DatabaseURL string
	Verbose     bool

	// Out receives progress and advisory messages; defaults to os.Stdout.
	Out io.Writer
}

// Run executes the linear pipeline: encode credential, search, format
// addresses, write the output file, and optionally persist the run. Each
// stage either succeeds and feeds the next or fails terminally.
func Run(ctx context.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if len(opts.SICCodes) == 0 {
		return fmt.Errorf("no SIC codes provided")
	}

	authHeader, err := auth.BasicHeader(opts.APIKey)
	if err != nil {
		return err
	}

	client := companieshouse.NewClient(authHeader, &companieshouse.Options{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
	})

	printer := observability.NewPrinter(out)
	if opts.Verbose {
		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = companieshouse.DefaultBaseURL
		}
		printer.PrintQuery(opts.Location, opts.SICCodes, baseURL)
	}

	fmt.Fprintf(out, "Searching for companies in %q with SIC code(s) %s...\n",
		opts.Location, strings.Join(opts.SICCodes, ", "))

	resp, err := client.AdvancedSearch(ctx, companieshouse.Query{
		Location: opts.Location,
		SICCodes: opts.SICCodes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "API reported %d total hits, %d items returned\n",
		resp.TotalResults, len(resp.Items))

	if resp.Truncated() {
		// Advisory only; the page that was returned is still written in full.
		fmt.Fprintf(out, "Note: only %d of %d results were returned on this page; pagination is not implemented\n",
			len(resp.Items), resp.TotalResults)
	}

	result := formatting.FormatAddresses(resp)

	filename := output.Filename(opts.Location, opts.SICCodes[0])
	if err := output.WriteBlocks(filename, result.Blocks); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d address block(s) to %s", len(result.Blocks), filename)
	if result.Skipped > 0 {
		fmt.Fprintf(out, " (%d record(s) skipped for missing address)", result.Skipped)
	}
	fmt.Fprintln(out)

	if opts.Verbose {
		printer.PrintSummary(observability.SummaryStats{
			TotalResults: resp.TotalResults,
			Returned:     len(resp.Items),
			Written:      len(result.Blocks),
			Skipped:      result.Skipped,
			OutputFile:   filename,
		})
	}

	if opts.DatabaseURL != "" {
		persistRun(ctx, out, opts, resp, result, filename)
	}

	return nil
}

// persistRun saves the run to Postgres. Persistence is best-effort: a failure
// warns but never fails a run whose output file was already written.
func persistRun(ctx context.Context, out io.Writer, opts Options, resp *companieshouse.SearchResponse, result *formatting.Result, filename string) {
	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		fmt.Fprintf(out, "Warning: failed to connect to database: %v\n", err)
		fmt.Fprintf(out, "Continuing without database persistence...\n")
		return
	}
	defer database.Close()

	searchID, err := database.CreateSearch(ctx, db.Search{
		Location:     opts.Location,
		SICCodes:     opts.SICCodes,
		TotalResults: resp.TotalResults,
		Returned:     len(resp.Items),
		Written:      len(result.Blocks),
		Skipped:      result.Skipped,
		OutputFile:   filename,
	})
	if err != nil {
		fmt.Fprintf(out, "Warning: failed to persist search run: %v\n", err)
		return
	}

	if err := database.SaveCompanies(ctx, searchID, resp.Items); err != nil {
		fmt.Fprintf(out, "Warning: failed to persist companies: %v\n", err)
		return
	}

	fmt.Fprintf(out, "Search run persisted as %s\n", searchID)
}
