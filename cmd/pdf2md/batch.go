// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every PDF in the input directory",
	Long: `Batch converts all PDF files in the input directory, one at a time
in lexical order, writing each result to the output directory. A file that
fails to convert is reported and the batch continues with the remaining
files. Input and output directories are created if absent.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	opts := convertOptions(cmd)

	inputDir := viper.GetString("convert.input_dir")
	if cmd.Flags().Changed("input-dir") {
		inputDir, _ = cmd.Flags().GetString("input-dir")
	}

	for _, dir := range []string{inputDir, opts.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	recorder, closeRecorder := openRecorder(cmd, opts.OutputDir)
	defer closeRecorder()

	result, err := convert.ConvertBatch(cmd.Context(), convert.OpenDocument, inputDir, opts, recorder, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("input-dir", "input", "directory scanned for PDF files")
	batchCmd.Flags().String("output-dir", "output", "directory for Markdown output")
	batchCmd.Flags().Bool("frontmatter", true, "prepend YAML provenance frontmatter")
	batchCmd.Flags().Bool("no-history", false, "skip recording to the conversion ledger")

	rootCmd.AddCommand(batchCmd)
}
