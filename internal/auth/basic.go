// Package auth builds the Basic Authentication header for the Companies House
// API, which uses the API key as username with an empty password.
package auth

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// EncodingError indicates the credential cannot be carried in an HTTP header.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("credential encoding error: %s", e.Reason)
}

// BasicHeader returns the Authorization header value for the given API key:
// "Basic " followed by the base64 encoding of "<apiKey>:".
func BasicHeader(apiKey string) (string, error) {
	if apiKey == "" {
		return "", &EncodingError{Reason: "credential is empty"}
	}
	if !utf8.ValidString(apiKey) {
		return "", &EncodingError{Reason: "credential is not valid UTF-8"}
	}
	for _, r := range apiKey {
		if r < 0x20 || r == 0x7f {
			return "", &EncodingError{Reason: "credential contains control characters"}
		}
	}

	token := base64.StdEncoding.EncodeToString([]byte(apiKey + ":"))
	return "Basic " + token, nil
}
