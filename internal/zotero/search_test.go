// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestSearchItemURLsSinglePage(t *testing.T) {
	var (
		calls    int
		gotQuery string
	)
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotQuery = r.URL.Query().Get("q")
		// Advertise a next page; the search must not follow it.
		w.Header().Set("Link", fmt.Sprintf(`<%s/cursor/2>; rel="next"`, ts.URL))
		fmt.Fprintf(w, "[%s,%s,%s]",
			itemJSON("I1", "GPT-4", "https://files.example.org/A1"),
			itemJSON("I2", "No attachment", ""),
			itemJSON("I3", "GPT-2", "https://files.example.org/A2"),
		)
	}))
	defer ts.Close()

	urls, err := testClient(t, ts.URL).SearchItemURLs(context.Background(), "large language models")
	if err != nil {
		t.Fatalf("SearchItemURLs() unexpected error: %v", err)
	}

	want := []string{"https://files.example.org/A1", "https://files.example.org/A2"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("SearchItemURLs() = %v, want %v", urls, want)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want exactly 1 (next cursor must not be followed)", calls)
	}
	if gotQuery != "large language models" {
		t.Errorf("q = %q, want the decoded query text", gotQuery)
	}
}

func TestSearchItemURLsEncodesQuery(t *testing.T) {
	var rawQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()

	_, err := testClient(t, ts.URL).SearchItemURLs(context.Background(), "C++ & Go")
	if err != nil {
		t.Fatalf("SearchItemURLs() unexpected error: %v", err)
	}
	if rawQuery != "q=C%2B%2B+%26+Go" {
		t.Errorf("raw query = %q, want URL-encoded form", rawQuery)
	}
}

func TestSearchItemURLsMalformedBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"garbage body", http.StatusOK, "not json"},
		{"object instead of array", http.StatusOK, `{"error":"boom"}`},
		// The status line is not inspected before parsing, so an error
		// page surfaces as a malformed response.
		{"server error page", http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			_, err := testClient(t, ts.URL).SearchItemURLs(context.Background(), "anything")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestSearchItemURLsEmptyResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()

	urls, err := testClient(t, ts.URL).SearchItemURLs(context.Background(), "no matches")
	if err != nil {
		t.Fatalf("SearchItemURLs() unexpected error: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("SearchItemURLs() = %v, want empty", urls)
	}
}
