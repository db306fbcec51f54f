// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/convert"
	"github.com/pdiddy/pdf2md/internal/history"
)

var convertCmd = &cobra.Command{
	Use:   "convert <pdf>",
	Short: "Convert a single PDF file to Markdown",
	Long: `Convert extracts the text of one PDF and writes a cleaned Markdown
file named <stem>_<timestamp>.md in the output directory, or to an explicit
path given with --output. Pages whose extraction fails are replaced with a
failure marker; the rest of the document is still converted.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := convertOptions(cmd)
	opts.OutputPath, _ = cmd.Flags().GetString("output")

	recorder, closeRecorder := openRecorder(cmd, opts.OutputDir)
	defer closeRecorder()

	_, err := convert.ConvertFile(cmd.Context(), convert.OpenDocument, args[0], opts, recorder, os.Stdout)
	return err
}

// --- shared helpers ---

// convertOptions merges viper settings with command flags. A flag the user
// set explicitly wins over the config file.
func convertOptions(cmd *cobra.Command) convert.Options {
	outputDir := viper.GetString("convert.output_dir")
	if cmd.Flags().Changed("output-dir") {
		outputDir, _ = cmd.Flags().GetString("output-dir")
	}
	withFrontmatter := viper.GetBool("convert.frontmatter")
	if cmd.Flags().Changed("frontmatter") {
		withFrontmatter, _ = cmd.Flags().GetBool("frontmatter")
	}

	return convert.Options{
		OutputDir:     outputDir,
		Frontmatter:   withFrontmatter,
		HeadingMaxLen: viper.GetInt("convert.heading_max_len"),
		Progress:      os.Stderr,
	}
}

// openRecorder opens the conversion ledger unless disabled. A ledger that
// cannot be opened degrades to a warning; conversion proceeds unrecorded.
func openRecorder(cmd *cobra.Command, outputDir string) (convert.Recorder, func()) {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	if noHistory || !viper.GetBool("history.enabled") {
		return nil, func() {}
	}

	store, err := history.Open(outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: conversion ledger unavailable: %v\n", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "explicit output file path")
	convertCmd.Flags().String("output-dir", "output", "directory for Markdown output")
	convertCmd.Flags().Bool("frontmatter", true, "prepend YAML provenance frontmatter")
	convertCmd.Flags().Bool("no-history", false, "skip recording to the conversion ledger")

	rootCmd.AddCommand(convertCmd)
}
