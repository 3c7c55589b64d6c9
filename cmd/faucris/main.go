// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the faucris CLI, a client for the
// public web service of FAU CRIS (the current research information system of
// Friedrich-Alexander-Universität Erlangen-Nürnberg).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/faucris/internal/cris"
	"github.com/pdiddy/faucris/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the faucris CLI.
var rootCmd = &cobra.Command{
	Use:   "faucris",
	Short: "Query the FAU CRIS research information web service",
	Long: `faucris fetches organization and publication records from the public
FAU CRIS web service, merges and filters them, and renders the result as a
table, JSON, BibTeX, or CSL-YAML.

Records are addressed by CRIS ids; publications can be resolved through an
organization, a person, or directly by publication id.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./faucris.yaml or ~/.config/faucris/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "web service base URL (default: the public CRIS endpoint)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().String("user-agent", "faucris/0.1", "User-Agent header for web service requests")
	rootCmd.PersistentFlags().Int("max-retries", 3, "retries on throttled or unavailable responses")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	viper.BindPFlag("max_retries", rootCmd.PersistentFlags().Lookup("max-retries"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("faucris")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "faucris"))
		}
	}

	viper.SetEnvPrefix("FAUCRIS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds the web service client from the resolved configuration.
// Skipped-descriptor warnings go to stderr.
func newClient() *cris.Client {
	c := cris.New(types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:    viper.GetString("base_url"),
		MaxRetries: viper.GetInt("max_retries"),
	})
	c.Warnings = os.Stderr
	return c
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
