// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package zotero fetches bibliographic items and their extracted full
// text from the Zotero web API (v3).
//
// The client resolves credentials once at construction, lists items
// library-wide or per collection by following Link-header pagination,
// searches items by free text, and retrieves the extracted full text of
// individual attachments. All operations are synchronous and fail fast
// on the first transport error.
package zotero

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pdiddy/zotero-connector/pkg/types"
)

const (
	// DefaultBaseURL is the public Zotero API endpoint.
	DefaultBaseURL = "https://api.zotero.org"

	// DefaultPageSize is the listing page size when none is configured.
	DefaultPageSize = 100

	// EnvUserID and EnvAPIKey name the environment variables the client
	// falls back to when credentials are not configured explicitly.
	EnvUserID = "ZOTERO_USER_ID"
	EnvAPIKey = "ZOTERO_PRIVATE_KEY"

	// apiVersion is sent as the Zotero-API-Version header on every request.
	apiVersion = "3"

	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "zotero-connector/0.1"
)

// Client talks to the Zotero web API on behalf of a single user library.
// Credentials are resolved once by NewClient and never change; the
// client carries no other mutable state and is safe for sequential use
// across operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userID     string
	apiKey     string
	pageSize   int
	userAgent  string
}

// NewClient builds a client from cfg. The user ID and API key come from
// cfg first and from the ZOTERO_USER_ID / ZOTERO_PRIVATE_KEY environment
// variables otherwise; a value missing from both sources returns an
// error wrapping ErrMissingCredentials before any network activity.
func NewClient(cfg types.ConnectorConfig) (*Client, error) {
	userID := cfg.UserID
	if userID == "" {
		userID = os.Getenv(EnvUserID)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: set user_id or the %s environment variable", ErrMissingCredentials, EnvUserID)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set api_key or the %s environment variable", ErrMissingCredentials, EnvAPIKey)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userID:     userID,
		apiKey:     apiKey,
		pageSize:   pageSize,
		userAgent:  userAgent,
	}, nil
}

// UserID returns the library identifier the client was constructed with.
func (c *Client) UserID() string { return c.userID }

// libraryURL joins the user library prefix with path.
func (c *Client) libraryURL(path string) string {
	return fmt.Sprintf("%s/users/%s/%s", c.baseURL, c.userID, path)
}

// newRequest builds a GET request carrying the authorization and API
// version headers every Zotero call requires.
func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Zotero-API-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
