// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader aggregates Zotero attachments into uniform documents.
// It resolves which attachment URLs to fetch (an explicit list, one
// collection, or the whole library) and materializes each one into a
// document carrying the extracted text and its source URL.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/zotero-connector/internal/zotero"
	"github.com/pdiddy/zotero-connector/pkg/types"
)

// Loader materializes attachment URLs into documents using a Zotero
// client.
type Loader struct {
	client *zotero.Client
}

// New returns a Loader backed by client.
func New(client *zotero.Client) *Loader {
	return &Loader{client: client}
}

// Load resolves the set of attachments to fetch and materializes each
// into a document, in order. A non-empty collectionID takes priority and
// any supplied itemURLs are ignored; with neither, the whole library is
// resolved first. Per-item progress goes to w.
//
// Materialization is sequential and fail-fast: the first failed fetch
// aborts the load with no partial result.
func (l *Loader) Load(ctx context.Context, itemURLs []string, collectionID string, w io.Writer) ([]types.Document, error) {
	urls := itemURLs
	switch {
	case collectionID != "":
		var err error
		urls, err = l.client.ItemURLs(ctx, collectionID)
		if err != nil {
			return nil, fmt.Errorf("locating items in collection %s: %w", collectionID, err)
		}
	case len(itemURLs) == 0:
		var err error
		urls, err = l.client.ItemURLs(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("locating library items: %w", err)
		}
	}

	docs := make([]types.Document, 0, len(urls))
	for _, itemURL := range urls {
		fmt.Fprintf(w, "fetching: %s\n", itemURL)
		text, err := l.client.Fulltext(ctx, itemURL)
		if err != nil {
			return nil, fmt.Errorf("fetching fulltext for %s: %w", itemURL, err)
		}
		docs = append(docs, types.Document{
			Content:  text,
			Metadata: map[string]string{types.MetadataItemKey: itemURL},
		})
	}
	return docs, nil
}
