// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/zotero-connector/internal/httputil"
)

// Item is one bibliographic record as returned by the items endpoints.
type Item struct {
	Key   string    `json:"key"`
	Links ItemLinks `json:"links"`
	Data  ItemData  `json:"data"`
}

// ItemLinks maps link relations to their targets. Only the attachment
// relation matters for document loading; items without it carry no
// retrievable content and are filtered out.
type ItemLinks struct {
	Self       *Link `json:"self,omitempty"`
	Alternate  *Link `json:"alternate,omitempty"`
	Attachment *Link `json:"attachment,omitempty"`
}

// Link is a single entry in an item's links mapping.
type Link struct {
	Href           string `json:"href"`
	Type           string `json:"type,omitempty"`
	AttachmentType string `json:"attachmentType,omitempty"`
}

// ItemData is the subset of item fields the connector surfaces.
type ItemData struct {
	Key      string `json:"key"`
	ItemType string `json:"itemType"`
	Title    string `json:"title"`
}

// ListItems returns every item in the library, or in a single collection
// when collectionID is non-empty. The initial request asks for the
// configured page size; while a response carries a Link rel="next"
// cursor, the cursor URL is fetched as-is (authorization headers only)
// and its items appended. A non-200 status on any page aborts the whole
// listing.
func (c *Client) ListItems(ctx context.Context, collectionID string) ([]Item, error) {
	path := "items"
	if collectionID != "" {
		path = "collections/" + url.PathEscape(collectionID) + "/items"
	}
	next := c.libraryURL(path) + "?limit=" + strconv.Itoa(c.pageSize)

	var items []Item
	for next != "" {
		page, cursor, err := c.itemsPage(ctx, next)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		next = cursor
	}
	return items, nil
}

// itemsPage fetches one page of items and returns the next cursor URL,
// or the empty string on the final page.
func (c *Client) itemsPage(ctx context.Context, pageURL string) ([]Item, string, error) {
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

	var page []Item
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", fmt.Errorf("%w: parsing items page: %v", ErrMalformedResponse, err)
	}
	return page, httputil.NextLink(resp.Header.Get("Link")), nil
}

// AttachmentURLs extracts the attachment hrefs from items, preserving
// order and skipping items that expose no attachment relation.
func AttachmentURLs(items []Item) []string {
	var urls []string
	for _, item := range items {
		if item.Links.Attachment != nil {
			urls = append(urls, item.Links.Attachment.Href)
		}
	}
	return urls
}

// ItemURLs returns the attachment URL of every item in the library, or
// in one collection when collectionID is non-empty, in discovery order
// (page order, then within-page order).
func (c *Client) ItemURLs(ctx context.Context, collectionID string) ([]string, error) {
	items, err := c.ListItems(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return AttachmentURLs(items), nil
}
