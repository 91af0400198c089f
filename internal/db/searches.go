package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Heather-Herbert/company-address-extractor/internal/companieshouse"
)

// Search represents one persisted search run.
type Search struct {
	ID           uuid.UUID `json:"id"`
	Location     string    `json:"location"`
	SICCodes     []string  `json:"sic_codes"`
	TotalResults int       `json:"total_results"`
	Returned     int       `json:"returned"`
	Written      int       `json:"written"`
	Skipped      int       `json:"skipped"`
	OutputFile   string    `json:"output_file"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSearch records a completed search run and returns its ID
func (db *DB) CreateSearch(ctx context.Context, s Search) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO searches (location, sic_codes, total_results, returned, written, skipped, output_file)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		s.Location, s.SICCodes, s.TotalResults, s.Returned, s.Written, s.Skipped, s.OutputFile,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create search: %w", err)
	}
	return id, nil
}

// SaveCompanies stores the companies returned by a search run. Companies
// without a registered office address are stored with empty address fields.
func (db *DB) SaveCompanies(ctx context.Context, searchID uuid.UUID, companies []companieshouse.Company) error {
	batch := &pgx.Batch{}
	for _, company := range companies {
		addr := company.RegisteredOfficeAddress
		if addr == nil {
			addr = &companieshouse.RegisteredOfficeAddress{}
		}
		batch.Queue(
			`INSERT INTO search_companies (search_id, company_name, address_line_1, address_line_2, locality, postal_code, has_address)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			searchID, company.CompanyName,
			addr.AddressLine1, addr.AddressLine2, addr.Locality, addr.PostalCode,
			company.RegisteredOfficeAddress != nil,
		)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range companies {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}
	}
	return nil
}

// GetSearch retrieves a search run by ID, or nil if not found
func (db *DB) GetSearch(ctx context.Context, id uuid.UUID) (*Search, error) {
	var s Search
	err := db.pool.QueryRow(ctx,
		`SELECT id, location, sic_codes, total_results, returned, written, skipped, output_file, created_at
		 FROM searches WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Location, &s.SICCodes, &s.TotalResults, &s.Returned, &s.Written, &s.Skipped, &s.OutputFile, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get search: %w", err)
	}
	return &s, nil
}

// ListSearches retrieves recent search runs, newest first
func (db *DB) ListSearches(ctx context.Context, limit int) ([]Search, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, location, sic_codes, total_results, returned, written, skipped, output_file, created_at
		 FROM searches ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		var s Search
		if err := rows.Scan(&s.ID, &s.Location, &s.SICCodes, &s.TotalResults, &s.Returned, &s.Written, &s.Skipped, &s.OutputFile, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, s)
	}
	return searches, nil
}
