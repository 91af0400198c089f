// Package formatting renders company search results as plain-text address blocks.
package formatting

import (
	"strings"

	"github.com/Heather-Herbert/company-address-extractor/internal/companieshouse"
)

// Result holds the formatted blocks and bookkeeping counts.
type Result struct {
	// Blocks contains one newline-terminated text block per company with a
	// registered office address, in response order.
	Blocks []string
	// Skipped counts companies excluded for lacking a registered office
	// address. Expected data sparsity, not an error.
	Skipped int
}

// FormatAddresses produces one block per company whose registered office
// address is present. Each block starts with the company name; optional
// address fields are emitted in fixed order and omitted entirely when absent.
func FormatAddresses(resp *companieshouse.SearchResponse) *Result {
	result := &Result{}

	for _, company := range resp.Items {
		addr := company.RegisteredOfficeAddress
		if addr == nil {
			result.Skipped++
			continue
		}

		lines := []string{company.CompanyName}
		if addr.AddressLine1 != "" {
			lines = append(lines, addr.AddressLine1)
		}
		if addr.AddressLine2 != "" {
			lines = append(lines, addr.AddressLine2)
		}
		if addr.Locality != "" {
			lines = append(lines, addr.Locality)
		}
		if addr.PostalCode != "" {
			lines = append(lines, addr.PostalCode)
		}

		result.Blocks = append(result.Blocks, strings.Join(lines, "\n")+"\n")
	}

	return result
}
