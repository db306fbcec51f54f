// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/markdown"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2md CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2md",
	Short: "Convert PDF documents to Markdown",
	Long: `pdf2md converts PDF documents into cleaned Markdown text files. It
extracts the embedded text layer page by page, normalizes whitespace, applies
a heading heuristic, and joins pages with boundary markers.

Use convert for a single file or batch to process every PDF in the input
directory. Completed runs are recorded in a local ledger; history lists them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2md.yaml or ~/.config/pdf2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
		}
	}

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	viper.SetDefault("convert.input_dir", "input")
	viper.SetDefault("convert.output_dir", "output")
	viper.SetDefault("convert.frontmatter", true)
	viper.SetDefault("convert.heading_max_len", markdown.DefaultHeadingMaxLen)
	viper.SetDefault("history.enabled", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
