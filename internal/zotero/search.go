// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pdiddy/zotero-connector/internal/httputil"
)

// SearchItemURLs returns the attachment URLs of items matching the
// free-text query, in result order. Only the first page of results is
// returned, even when the response advertises a next cursor.
//
// Unlike the listing operations, the status line is not inspected: an
// error page whose body is not an item array surfaces as a
// malformed-response error rather than a transport error.
func (c *Client) SearchItemURLs(ctx context.Context, query string) ([]string, error) {
	searchURL := c.libraryURL("items") + "?q=" + url.QueryEscape(query)

	req, err := c.newRequest(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Zotero API request: %w", err)
	}
	defer resp.Body.Close()

	var page []Item
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: parsing search results: %v", ErrMalformedResponse, err)
	}

	// The next cursor, when present, is intentionally not followed.
	_ = httputil.NextLink(resp.Header.Get("Link"))

	return AttachmentURLs(page), nil
}
