// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty page",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace-only page",
			raw:  "  \n\t\n   ",
			want: "",
		},
		{
			name: "title and body",
			raw:  "Title\n\nBody text.",
			want: "## Title\n\nBody text.",
		},
		{
			name: "mixed tabs and repeated newlines collapse within paragraphs",
			raw:  "alpha\tbeta   gamma.\n\n\n\nsecond  paragraph\nwraps onto a line.",
			want: "alpha beta gamma.\n\nsecond paragraph wraps onto a line.",
		},
		{
			name: "line-wrapped paragraph joins with single spaces",
			raw:  "The quick brown fox\njumps over\nthe lazy dog.",
			want: "The quick brown fox jumps over the lazy dog.",
		},
		{
			name: "short sentence with terminal punctuation stays a paragraph",
			raw:  "It rained.",
			want: "It rained.",
		},
		{
			name: "short line without punctuation becomes a heading",
			raw:  "Results and Discussion",
			want: "## Results and Discussion",
		},
		{
			name: "long line without punctuation stays a paragraph",
			raw: "a line that rambles on well past the heading length threshold " +
				"without ever reaching terminal punctuation",
			want: "a line that rambles on well past the heading length threshold " +
				"without ever reaching terminal punctuation",
		},
		{
			name: "digits-only line is not a heading",
			raw:  "42",
			want: "42",
		},
		{
			name: "closing quote after punctuation is not a heading",
			raw:  "He said \"stop.\"",
			want: "He said \"stop.\"",
		},
		{
			name: "leading and trailing whitespace stripped per line",
			raw:  "   Overview   \n\n  body starts here.  ",
			want: "## Overview\n\nbody starts here.",
		},
		{
			name: "carriage returns normalized",
			raw:  "First half\r\nsecond half.",
			want: "First half second half.",
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Page(tt.raw, 1); got != tt.want {
				t.Errorf("Page() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageDeterministic(t *testing.T) {
	raw := "Heading Candidate\n\nBody with\ttabs and\nwrapped lines."
	r := New()

	first := r.Page(raw, 3)
	second := r.Page(raw, 3)
	if first != second {
		t.Errorf("repeated reconstruction differs: %q vs %q", first, second)
	}
}

func TestPageHeadingThreshold(t *testing.T) {
	line := strings.Repeat("x", 10) + " heading"

	tight := &Reconstructor{HeadingMaxLen: 5}
	if got := tight.Page(line, 1); strings.HasPrefix(got, "## ") {
		t.Errorf("line over threshold classified as heading: %q", got)
	}

	loose := &Reconstructor{HeadingMaxLen: 80}
	if got := loose.Page(line, 1); !strings.HasPrefix(got, "## ") {
		t.Errorf("line under threshold not classified as heading: %q", got)
	}
}

func TestPageZeroThresholdDefaults(t *testing.T) {
	r := &Reconstructor{}
	if got := r.Page("Overview", 1); got != "## Overview" {
		t.Errorf("Page() = %q, want heading with default threshold", got)
	}
}

func TestFailedPage(t *testing.T) {
	if got := FailedPage(4); got != "[Page 4 extraction failed]" {
		t.Errorf("FailedPage(4) = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	got := Separator(7)
	if got != "---\n<!-- page 7 -->" {
		t.Errorf("Separator(7) = %q", got)
	}
	if !strings.HasPrefix(got, "---") {
		t.Error("separator should start with a horizontal rule")
	}
}
