// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pdiddy/zotero-connector/internal/httputil"
)

// Collection is one collection in the user library.
type Collection struct {
	Key  string         `json:"key"`
	Meta CollectionMeta `json:"meta"`
	Data CollectionData `json:"data"`
}

// CollectionMeta carries server-computed collection metadata.
type CollectionMeta struct {
	NumItems int `json:"numItems"`
}

// CollectionData is the editable part of a collection record.
type CollectionData struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Collections returns every collection in the library, following
// Link-header pagination the same way the item listing does.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	next := c.libraryURL("collections") + "?limit=" + strconv.Itoa(c.pageSize)

	var collections []Collection
	for next != "" {
		page, cursor, err := c.collectionsPage(ctx, next)
		if err != nil {
			return nil, err
		}
		collections = append(collections, page...)
		next = cursor
	}
	return collections, nil
}

// collectionsPage mirrors itemsPage for the collections endpoint.
func (c *Client) collectionsPage(ctx context.Context, pageURL string) ([]Collection, string, error) {
	req, err := c.newRequest(ctx, pageURL)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("Zotero API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &StatusError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	var page []Collection
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", fmt.Errorf("%w: parsing collections page: %v", ErrMalformedResponse, err)
	}
	return page, httputil.NextLink(resp.Header.Get("Link")), nil
}
