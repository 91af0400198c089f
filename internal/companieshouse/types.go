package companieshouse

// RegisteredOfficeAddress is the registered-office address sub-object of a
// search result. All fields are optional in the API.
type RegisteredOfficeAddress struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// Company is a single advanced-search result. RegisteredOfficeAddress is nil
// when the API omits the address or returns it as null.
type Company struct {
	CompanyName             string                   `json:"company_name"`
	RegisteredOfficeAddress *RegisteredOfficeAddress `json:"registered_office_address,omitempty"`
}

// SearchResponse is one page of advanced-search results. TotalResults may
// exceed len(Items) when the result set is larger than the requested page
// size; this tool does not paginate.
type SearchResponse struct {
	TotalResults int       `json:"total_results"`
	Items        []Company `json:"items"`
}

// Truncated reports whether the API holds more results than this page returned.
func (r *SearchResponse) Truncated() bool {
	return len(r.Items) < r.TotalResults
}
