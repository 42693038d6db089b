// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "zotero-connector/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConnectorConfig holds settings for the Zotero API client.
type ConnectorConfig struct {
	HTTPConfig `yaml:",inline"`

	// UserID is the numeric Zotero user library identifier. When empty,
	// the client falls back to the ZOTERO_USER_ID environment variable.
	UserID string `json:"user_id" yaml:"user_id"`

	// APIKey is the Zotero private key used for authentication. When
	// empty, the client falls back to the ZOTERO_PRIVATE_KEY environment
	// variable.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the Zotero API endpoint. Empty means the public
	// API at https://api.zotero.org.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// PageSize is the number of items requested per listing page
	// (default 100). Follow-up cursor requests carry no parameters, so
	// this only shapes the initial request.
	PageSize int `json:"page_size" yaml:"page_size"`
}
