// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress reports per-page conversion progress on a terminal.
package progress

import (
	"fmt"
	"io"
)

// Reporter prints a carriage-return counter ("label: 3/10") to a writer.
// A nil Reporter or nil writer is a no-op, so callers can pass nil to
// disable progress output.
type Reporter struct {
	w       io.Writer
	label   string
	total   int
	current int
}

// New returns a Reporter for total units, writing to w.
func New(w io.Writer, label string, total int) *Reporter {
	return &Reporter{w: w, label: label, total: total}
}

// Advance marks one unit complete and redraws the counter.
func (r *Reporter) Advance() {
	if r == nil || r.w == nil {
		return
	}
	r.current++
	fmt.Fprintf(r.w, "\r%s: %d/%d", r.label, r.current, r.total)
}

// Done terminates the counter line. No-op when nothing was drawn.
func (r *Reporter) Done() {
	if r == nil || r.w == nil || r.current == 0 {
		return
	}
	fmt.Fprintln(r.w)
}
