package companieshouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvancedSearch_Success(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_results": 1,
			"items": [
				{
					"company_name": "Acme Ltd",
					"registered_office_address": {
						"address_line_1": "1 High St",
						"locality": "London",
						"postal_code": "E1 1AA"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL})
	resp, err := client.AdvancedSearch(context.Background(), Query{
		Location: "London",
		SICCodes: []string{"62012", "62020"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 1, resp.TotalResults)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Acme Ltd", resp.Items[0].CompanyName)
	require.NotNil(t, resp.Items[0].RegisteredOfficeAddress)
	assert.Equal(t, "1 High St", resp.Items[0].RegisteredOfficeAddress.AddressLine1)
	assert.Equal(t, "E1 1AA", resp.Items[0].RegisteredOfficeAddress.PostalCode)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/advanced-search/companies", gotRequest.URL.Path)
	assert.Equal(t, "Basic dGVzdDo=", gotRequest.Header.Get("Authorization"))

	query := gotRequest.URL.Query()
	assert.Equal(t, "London", query.Get("location"))
	assert.Equal(t, []string{"62012", "62020"}, query["sic_codes"])
	assert.Equal(t, "active", query.Get("company_status"))
	assert.Equal(t, "500", query.Get("size"))
}

func TestAdvancedSearch_NullAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"total_results": 2,
			"items": [
				{"company_name": "No Address Ltd"},
				{"company_name": "Null Address Ltd", "registered_office_address": null}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL})
	resp, err := client.AdvancedSearch(context.Background(), Query{Location: "Leeds", SICCodes: []string{"62012"}})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Nil(t, resp.Items[0].RegisteredOfficeAddress)
	assert.Nil(t, resp.Items[1].RegisteredOfficeAddress)
}

func TestAdvancedSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid Authorization"}`))
	}))
	defer server.Close()

	client := NewClient("Basic d3Jvbmc6", &Options{BaseURL: server.URL})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "401")
}

func TestAdvancedSearch_ErrorBodyTruncatedOnRuneBoundary(t *testing.T) {
	// A pound sign straddles the truncation offset; the truncated body must
	// still be valid UTF-8
	body := strings.Repeat("a", maxErrorBodyLen-1) + strings.Repeat("£", 40)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, strings.HasSuffix(apiErr.Body, "..."))
	assert.True(t, utf8.ValidString(apiErr.Body))
	assert.LessOrEqual(t, len(apiErr.Body), maxErrorBodyLen+3)
}

func TestAdvancedSearch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total_results": 1, "items": [`))
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAdvancedSearch_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total_results": "lots"}`))
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "unexpected response shape")
}

func TestAdvancedSearch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	serverURL := server.URL
	server.Close() // Nothing listening anymore

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: serverURL})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestAdvancedSearch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClient("Basic dGVzdDo=", &Options{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := client.AdvancedSearch(context.Background(), Query{Location: "London", SICCodes: []string{"62012"}})
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestTruncated(t *testing.T) {
	full := &SearchResponse{TotalResults: 2, Items: make([]Company, 2)}
	assert.False(t, full.Truncated())

	partial := &SearchResponse{TotalResults: 50, Items: make([]Company, 20)}
	assert.True(t, partial.Truncated())

	empty := &SearchResponse{}
	assert.False(t, empty.Truncated())
}
