// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists conversions recorded in the ledger, newest first. The
ledger lives under the output directory at index/conversions.db.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	outputDir := viper.GetString("convert.output_dir")
	if cmd.Flags().Changed("output-dir") {
		outputDir, _ = cmd.Flags().GetString("output-dir")
	}

	store, err := history.Open(outputDir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-9s  %5s  %6s  %s\n",
		"Converted", "Status", "Pages", "Failed", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-19s  %-9s  %5d  %6d  %s\n",
			r.ConvertedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status, r.Pages, r.FailedPages, r.SourcePath)
	}
	return nil
}

func init() {
	historyCmd.Flags().String("output-dir", "output", "directory for Markdown output")
	historyCmd.Flags().Int("limit", 20, "maximum number of records to list")
	historyCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(historyCmd)
}
