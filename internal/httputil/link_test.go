// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
		{
			name:   "single next link",
			header: `<https://api.zotero.org/users/12345/items?start=100>; rel="next"`,
			want:   "https://api.zotero.org/users/12345/items?start=100",
		},
		{
			name: "next among multiple relations",
			header: `<https://api.zotero.org/users/12345/items?start=100&limit=100>; rel="next", ` +
				`<https://api.zotero.org/users/12345/items?start=400&limit=100>; rel="last", ` +
				`<https://www.zotero.org/users/12345/items>; rel="alternate"`,
			want: "https://api.zotero.org/users/12345/items?start=100&limit=100",
		},
		{
			name:   "no next relation",
			header: `<https://api.zotero.org/users/12345/items?start=0>; rel="first", <https://api.zotero.org/users/12345/items?start=0>; rel="last"`,
			want:   "",
		},
		{
			name:   "extra whitespace between entries",
			header: `<https://example.org/a>; rel="prev" ,   <https://example.org/b>; rel="next"`,
			want:   "https://example.org/b",
		},
		{
			name:   "malformed header",
			header: `not a link header`,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLink(tt.header))
		})
	}
}

func TestLinks(t *testing.T) {
	header := `<https://example.org/items?start=100>; rel="next", <https://example.org/items?start=900>; rel="last"`

	links := Links(header)
	assert.Equal(t, map[string]string{
		"next": "https://example.org/items?start=100",
		"last": "https://example.org/items?start=900",
	}, links)

	assert.Empty(t, Links(""))
}
