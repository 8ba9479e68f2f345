// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pagethumb CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pagethumb CLI.
var rootCmd = &cobra.Command{
	Use:   "pagethumb",
	Short: "Split PDFs into pages and generate per-page thumbnails",
	Long: `pagethumb splits a multi-page PDF into single-page PDF files and renders a
JPEG thumbnail for each page through an external rasterizer. The rasterizer
chooses its own output filenames, so a reconciliation pass renames thumbnails
to a stable page_{n}_{name}.jpeg form afterwards.

Run the full pipeline with "process", or each stage on its own with "split",
"thumbs", and "reconcile".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pagethumb.yaml or ~/.config/pagethumb/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagethumb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pagethumb"))
		}
	}

	viper.SetEnvPrefix("PAGETHUMB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
