package companieshouse

import "fmt"

// TransportError indicates a network-level failure (connection refused, DNS
// failure, timeout) before any HTTP response was received.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError indicates a non-2xx HTTP response from the API.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error for %s: HTTP status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error for %s: HTTP status %d", e.URL, e.StatusCode)
}

// ParseError indicates the response body was not valid JSON or did not match
// the expected search response shape.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
