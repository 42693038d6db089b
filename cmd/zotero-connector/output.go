// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zotero-connector/pkg/types"
)

type format int

const (
	formatText format = iota
	formatJSON
	formatYAML
)

// outputFormat maps the --json/--yaml flags to a format; JSON wins when
// both are set.
func outputFormat(asJSON, asYAML bool) format {
	switch {
	case asJSON:
		return formatJSON
	case asYAML:
		return formatYAML
	default:
		return formatText
	}
}

// writeDocuments renders loaded documents to w.
func writeDocuments(w io.Writer, docs []types.Document, f format) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case formatYAML:
		data, err := yaml.Marshal(docs)
		if err != nil {
			return fmt.Errorf("encoding documents: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		for _, doc := range docs {
			fmt.Fprintf(w, "--- %s\n%s\n", doc.Metadata[types.MetadataItemKey], doc.Content)
		}
		return nil
	}
}
