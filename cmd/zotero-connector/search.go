package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the library and print matching attachment URLs",
	Long: `Search runs a free-text query against the library and prints the attachment
URLs of matching items, one per line. Only the first page of results is
returned. Pipe the output into "load" to fetch the documents themselves.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search query")
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	urls, err := client.SearchItemURLs(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, u := range urls {
		fmt.Println(u)
	}
	return nil
}
