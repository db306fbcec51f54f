// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown rebuilds cleaned Markdown from raw per-page PDF text.
//
// The heading heuristic is best-effort: a paragraph consisting of a single
// short line without terminal punctuation is emitted as a heading. Short
// sentences can be misclassified; the length threshold is configurable.
package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultHeadingMaxLen is the longest line, in runes, still considered a
// heading candidate.
const DefaultHeadingMaxLen = 60

const failedPageFormat = "[Page %d extraction failed]"

// Reconstructor turns raw extracted page text into Markdown fragments.
type Reconstructor struct {
	// HeadingMaxLen is the heading-candidate length threshold. Zero means
	// DefaultHeadingMaxLen.
	HeadingMaxLen int
}

// New returns a Reconstructor with default thresholds.
func New() *Reconstructor {
	return &Reconstructor{HeadingMaxLen: DefaultHeadingMaxLen}
}

// Page converts one page's raw text into a Markdown fragment. It is a pure
// function of its inputs: whitespace runs inside a paragraph collapse to
// single spaces, blank lines delimit paragraphs, and short unpunctuated
// single-line paragraphs become "##" headings. A blank page yields "".
func (r *Reconstructor) Page(raw string, index int) string {
	maxLen := r.HeadingMaxLen
	if maxLen <= 0 {
		maxLen = DefaultHeadingMaxLen
	}

	text := norm.NFC.String(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var blocks []string
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, formatBlock(para, maxLen))
		para = para[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		// Collapses tabs and runs of spaces as a side effect.
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()

	return strings.Join(blocks, "\n\n")
}

// FailedPage returns the marker fragment emitted in place of a page whose
// text could not be extracted.
func FailedPage(index int) string {
	return fmt.Sprintf(failedPageFormat, index)
}

// Separator returns the page-boundary marker placed before page index.
// Joined documents carry exactly one separator between consecutive pages.
func Separator(index int) string {
	return fmt.Sprintf("---\n<!-- page %d -->", index)
}

// formatBlock renders one paragraph's lines: a lone heading candidate
// becomes a heading, everything else joins into a single-space paragraph.
func formatBlock(lines []string, maxLen int) string {
	if len(lines) == 1 && isHeading(lines[0], maxLen) {
		return "## " + lines[0]
	}
	return strings.Join(lines, " ")
}

// isHeading reports whether a lone line looks like a section title: short,
// containing at least one letter, and without terminal punctuation.
func isHeading(line string, maxLen int) bool {
	runes := []rune(line)
	if len(runes) == 0 || len(runes) > maxLen {
		return false
	}

	hasLetter := false
	for _, c := range runes {
		if unicode.IsLetter(c) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}

	last := runes[len(runes)-1]
	if isClosingQuote(last) {
		if len(runes) < 2 {
			return false
		}
		last = runes[len(runes)-2]
	}
	return !isTerminalPunct(last)
}

func isClosingQuote(c rune) bool {
	switch c {
	case '"', '\'', '”', '’', '」', '』':
		return true
	}
	return false
}

func isTerminalPunct(c rune) bool {
	switch c {
	case '.', ',', ';', ':', '!', '?',
		'。', '，', '；', '：', '！', '？', '…':
		return true
	}
	return false
}
