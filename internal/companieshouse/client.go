// Package companieshouse provides a client for the Companies House advanced
// company search endpoint.
package companieshouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Heather-Herbert/company-address-extractor/internal/schemas"
)

// DefaultBaseURL is the production Companies House API host.
const DefaultBaseURL = "https://api.company-information.service.gov.uk"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultPageSize is the number of results requested per search. The API caps
// a single page; results beyond it require pagination, which this tool does
// not implement.
const DefaultPageSize = 500

const advancedSearchPath = "/advanced-search/companies"

// maxErrorBodyLen bounds how much of an error response body is carried in an
// APIError message.
const maxErrorBodyLen = 200

// Query describes one advanced company search.
type Query struct {
	Location string
	SICCodes []string
}

// Options configures the client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues advanced company searches with Basic Authentication.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// NewClient creates a Client using the given Authorization header value.
func NewClient(authHeader string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authHeader: authHeader,
		httpClient: httpClient,
	}
}

// AdvancedSearch performs one search request and decodes the response.
// SIC codes are passed through verbatim; whether multiple codes combine as
// AND or OR is decided server-side.
func (c *Client) AdvancedSearch(ctx context.Context, q Query) (*SearchResponse, error) {
	values := url.Values{}
	values.Set("location", q.Location)
	for _, code := range q.SICCodes {
		values.Add("sic_codes", code)
	}
	values.Set("company_status", "active")
	values.Set("size", strconv.Itoa(DefaultPageSize))

	requestURL := c.baseURL + advancedSearchPath + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	if err := schemas.ValidateSearchResponse(body); err != nil {
		return nil, &ParseError{Message: "unexpected response shape", Cause: err}
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ParseError{Message: "failed to decode response JSON", Cause: err}
	}

	return &result, nil
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyLen {
		// Back up to a rune boundary so a multi-byte character is never split
		cut := maxErrorBodyLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
