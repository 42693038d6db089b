// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// fulltextResponse is the body of an attachment fulltext request. The
// pointer distinguishes an absent content field from an empty one.
type fulltextResponse struct {
	Content *string `json:"content"`
}

// Fulltext fetches the extracted full text for a single attachment URL.
// A non-200 status fails immediately with a transport error; a success
// body without a content field is a malformed-response error.
func (c *Client) Fulltext(ctx context.Context, itemURL string) (string, error) {
	textURL := itemURL + "/fulltext"

	req, err := c.newRequest(ctx, textURL)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Zotero API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: textURL}
	}

	var body fulltextResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: parsing fulltext body: %v", ErrMalformedResponse, err)
	}
	if body.Content == nil {
		return "", fmt.Errorf("%w: fulltext body for %s has no content field", ErrMalformedResponse, itemURL)
	}
	return *body.Content, nil
}
