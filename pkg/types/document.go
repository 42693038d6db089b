// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the Zotero connector:
// the uniform document produced by the loader and the configuration
// consumed by the client.
package types

// MetadataItemKey is the metadata field holding the attachment URL a
// document was materialized from.
const MetadataItemKey = "item_key"

// Document is the connector's uniform output: the extracted full text of
// one attachment plus provenance metadata. Documents are created by the
// loader and never mutated afterwards.
type Document struct {
	// Content is the extracted full text of the attachment.
	Content string `json:"content" yaml:"content"`

	// Metadata carries provenance fields. It always contains
	// MetadataItemKey, the attachment URL the content was fetched from.
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}
