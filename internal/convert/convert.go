// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives PDF-to-Markdown conversion: it pulls pages from an
// extraction source, reconstructs each one as Markdown, and writes a
// timestamped output file. Per-page extraction failures degrade to a marker
// fragment; only file-level failures abort a conversion.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/pdf2md/internal/extract"
	"github.com/pdiddy/pdf2md/internal/markdown"
	"github.com/pdiddy/pdf2md/internal/progress"
	"github.com/pdiddy/pdf2md/pkg/types"
)

// Source yields a document's pages in order. *extract.Document satisfies it.
type Source interface {
	PageCount() int
	Next() (types.Page, bool)
	Close() error
}

// Opener opens a PDF as a page Source. Production code uses OpenDocument;
// tests substitute fakes.
type Opener func(path string) (Source, error)

// OpenDocument adapts extract.Open to the Opener type.
func OpenDocument(path string) (Source, error) {
	return extract.Open(path)
}

// Recorder receives completed conversion records. *history.Store satisfies
// it. Recording is best-effort: a Recorder error is reported as a warning
// and never fails the conversion.
type Recorder interface {
	Record(ctx context.Context, rec types.ConversionRecord) error
}

// Options control a conversion run.
type Options struct {
	// OutputPath forces an explicit output file. When empty the file is
	// named <stem>_<timestamp>.md under OutputDir.
	OutputPath string

	// OutputDir is the destination directory for named output.
	OutputDir string

	// Frontmatter prepends YAML provenance frontmatter when true.
	Frontmatter bool

	// HeadingMaxLen overrides the heading-candidate threshold. Zero keeps
	// the reconstructor default.
	HeadingMaxLen int

	// Progress receives the per-page counter. Nil disables it.
	Progress io.Writer

	// Now supplies the clock for output naming and records. Nil means
	// time.Now.
	Now func() time.Time
}

// ConvertFile converts one PDF into a Markdown file, writing status lines
// to w. The returned record describes the run even when some pages failed;
// a file-level failure (unreadable or unparseable document, write error)
// returns an error instead.
func ConvertFile(ctx context.Context, open Opener, path string, opts Options, rec Recorder, w io.Writer) (types.ConversionRecord, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	src, err := open(path)
	if err != nil {
		return types.ConversionRecord{}, err
	}
	defer src.Close()

	total := src.PageCount()
	fmt.Fprintf(w, "converting %s (%d pages)\n", filepath.Base(path), total)

	reconstructor := markdown.New()
	if opts.HeadingMaxLen > 0 {
		reconstructor.HeadingMaxLen = opts.HeadingMaxLen
	}

	bar := progress.New(opts.Progress, "  pages", total)

	var body strings.Builder
	pages, failed := 0, 0
	for {
		select {
		case <-ctx.Done():
			return types.ConversionRecord{}, ctx.Err()
		default:
		}

		page, ok := src.Next()
		if !ok {
			break
		}
		pages++

		if page.Index > 1 {
			body.WriteString("\n\n")
			body.WriteString(markdown.Separator(page.Index))
			body.WriteString("\n\n")
		}
		if page.Err != nil {
			body.WriteString(markdown.FailedPage(page.Index))
			failed++
		} else {
			body.WriteString(reconstructor.Page(page.Text, page.Index))
		}
		bar.Advance()
	}
	bar.Done()

	completedAt := now()
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var doc strings.Builder
	if opts.Frontmatter {
		doc.WriteString(frontmatter(path, pages, completedAt.UTC()))
	}
	doc.WriteString("# ")
	doc.WriteString(stem)
	doc.WriteString("\n\n")
	doc.WriteString(body.String())
	doc.WriteString("\n")

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = OutputPath(opts.OutputDir, path, completedAt)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return types.ConversionRecord{}, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(doc.String()), 0o644); err != nil {
		return types.ConversionRecord{}, fmt.Errorf("writing %s: %w", outPath, err)
	}

	status := types.ConversionDone
	if failed > 0 {
		status = types.ConversionPartial
	}
	record := types.ConversionRecord{
		SourcePath:  path,
		OutputPath:  outPath,
		Pages:       pages,
		FailedPages: failed,
		Status:      status,
		ConvertedAt: completedAt.UTC(),
	}

	if failed > 0 {
		fmt.Fprintf(w, "converted: %s -> %s (%d of %d pages failed)\n",
			filepath.Base(path), outPath, failed, pages)
	} else {
		fmt.Fprintf(w, "converted: %s -> %s\n", filepath.Base(path), outPath)
	}

	if rec != nil {
		if err := rec.Record(ctx, record); err != nil {
			fmt.Fprintf(w, "warning: conversion not recorded: %v\n", err)
		}
	}

	return record, nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Partial   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Partial + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts every PDF file in inputDir, strictly sequentially
// and in lexical order, printing per-file status to w. A file that fails to
// convert is reported and the batch continues with the remaining files.
func ConvertBatch(ctx context.Context, open Opener, inputDir string, opts Options, rec Recorder, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(inputDir, entry.Name()))
	}

	if len(paths) == 0 {
		fmt.Fprintf(w, "no PDF files found in %s\n", inputDir)
		return BatchResult{}, nil
	}

	var result BatchResult
	for _, p := range paths {
		record, err := ConvertFile(ctx, open, p, opts, rec, w)
		if err != nil {
			if ctx.Err() != nil {
				return result, err
			}
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(p), err)
			result.Failed++
			continue
		}
		if record.Status == types.ConversionPartial {
			result.Partial++
		} else {
			result.Converted++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d partial, %d failed (total: %d)\n",
		result.Converted, result.Partial, result.Failed, result.Total())
	return result, nil
}
