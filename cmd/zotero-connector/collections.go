package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the collections in the library",
	Long: `Collections lists every collection in the user library with its key, name,
and item count. Collection keys are what the --collection flag of the items
and load commands expects.`,
	RunE: runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	collections, err := client.Collections(context.Background())
	if err != nil {
		return err
	}
	for _, c := range collections {
		fmt.Printf("%s  %s (%d items)\n", c.Key, c.Data.Name, c.Meta.NumItems)
	}
	return nil
}
