// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a PDF-to-Markdown conversion.
type ConversionStatus string

const (
	ConversionNone    ConversionStatus = "none"
	ConversionDone    ConversionStatus = "converted"
	ConversionPartial ConversionStatus = "partial"
	ConversionFailed  ConversionStatus = "failed"
)

// Page holds the raw extracted text of a single PDF page.
type Page struct {
	// Index is the 1-based page number in source order.
	Index int

	// Text is the raw text the extraction layer produced. Empty for blank pages.
	Text string

	// Err is non-nil when extraction failed for this page only. The rest of
	// the document remains usable; the page is rendered as a failure marker.
	Err error
}

// ConversionRecord describes one completed conversion run.
type ConversionRecord struct {
	// SourcePath is the PDF that was converted.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the Markdown file that was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Pages is the number of pages in the source document.
	Pages int `json:"pages" yaml:"pages"`

	// FailedPages counts pages that yielded an extraction failure marker.
	FailedPages int `json:"failed_pages" yaml:"failed_pages"`

	// Status is converted, or partial when some pages failed.
	Status ConversionStatus `json:"status" yaml:"status"`

	// ConvertedAt is the completion time in UTC.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
