// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"errors"
	"fmt"
)

// Common errors returned by the Zotero client.
var (
	// ErrMissingCredentials indicates the user ID or API key could not be
	// resolved from configuration or the environment at construction.
	ErrMissingCredentials = errors.New("missing Zotero credentials")

	// ErrTransport indicates the API answered with a non-success status.
	ErrTransport = errors.New("Zotero API transport error")

	// ErrMalformedResponse indicates a response body that lacks the
	// expected structure, as opposed to an outright request failure.
	ErrMalformedResponse = errors.New("malformed Zotero API response")
)

// StatusError is a transport failure carrying the HTTP status code and
// the request URL. It matches ErrTransport under errors.Is.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Zotero API returned HTTP %d for %s", e.StatusCode, e.URL)
}

// Unwrap lets errors.Is(err, ErrTransport) match status failures.
func (e *StatusError) Unwrap() error { return ErrTransport }
