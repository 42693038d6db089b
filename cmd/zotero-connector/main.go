// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zotero-connector CLI, a thin
// driver around the connector: list items and collections, search the
// library, and load attachment full text as uniform documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zotero-connector/internal/secrets"
	"github.com/pdiddy/zotero-connector/internal/zotero"
	"github.com/pdiddy/zotero-connector/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "zotero-connector/0.1"

	secretUserID = "zotero-user-id"
	secretAPIKey = "zotero-api-key"
)

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the zotero-connector CLI.
var rootCmd = &cobra.Command{
	Use:   "zotero-connector",
	Short: "Fetch Zotero items and full-text documents for indexing",
	Long: `zotero-connector fetches bibliographic items and their extracted full-text
content from the Zotero web API and converts them into uniform documents
for downstream indexing.

Credentials resolve from flags or config first, then .secrets/ key files,
then the ZOTERO_USER_ID / ZOTERO_PRIVATE_KEY environment variables
(a .env file in the working directory is honored).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Populate the environment fallback from .env when present.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./zotero-connector.yaml or ~/.config/zotero-connector/config.yaml)")
	rootCmd.PersistentFlags().String("user-id", "", "Zotero user library identifier")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zotero-connector")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zotero-connector"))
		}
	}

	viper.SetEnvPrefix("ZOTERO_CONNECTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// connectorConfig assembles client settings from flags, the config file,
// and loaded secrets, in that order of precedence. Values absent from
// all three fall through to the client's environment lookup.
func connectorConfig(cmd *cobra.Command) types.ConnectorConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userID, _ := cmd.Flags().GetString("user-id")
	if userID == "" {
		userID = viper.GetString("user_id")
	}
	if userID == "" {
		userID = loadedSecrets[secretUserID]
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		apiKey = loadedSecrets[secretAPIKey]
	}

	return types.ConnectorConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		UserID:   userID,
		APIKey:   apiKey,
		BaseURL:  viper.GetString("base_url"),
		PageSize: viper.GetInt("page_size"),
	}
}

// newClient builds the Zotero client shared by all subcommands.
func newClient(cmd *cobra.Command) (*zotero.Client, error) {
	return zotero.NewClient(connectorConfig(cmd))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
