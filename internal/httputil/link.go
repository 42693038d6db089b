// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the connector.
package httputil

import (
	"regexp"
	"strings"
)

// linkRegex matches one Link header entry: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// Links extracts all URLs from a Link response header, keyed by relation
// type (next, prev, first, last). An empty or absent header yields an
// empty map.
func Links(linkHeader string) map[string]string {
	links := make(map[string]string)
	if linkHeader == "" {
		return links
	}

	for _, part := range strings.Split(linkHeader, ",") {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 {
			links[matches[2]] = matches[1]
		}
	}
	return links
}

// NextLink extracts the rel="next" cursor URL from a Link response
// header. It returns the empty string when the header carries no next
// link, which callers treat as the end of a paginated sequence.
func NextLink(linkHeader string) string {
	return Links(linkHeader)["next"]
}
