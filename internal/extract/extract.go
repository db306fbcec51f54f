// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract wraps the PDF text-layer reader behind a lazy, ordered
// page sequence. Only the embedded text layer is read; scanned (image-only)
// PDFs require OCR and are out of scope.
package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// FileError reports a source file that is missing or unreadable.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }

// FormatError reports a file the parser does not recognize as a PDF.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string { return fmt.Sprintf("parsing %s: %v", e.Path, e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }

// PageError reports a single page whose text could not be extracted.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string { return fmt.Sprintf("extracting page %d: %v", e.Page, e.Err) }
func (e *PageError) Unwrap() error { return e.Err }

// Document is an open PDF yielding pages in source order. Iteration is not
// restartable; reading the document again requires a fresh Open.
type Document struct {
	path  string
	f     *os.File
	r     *pdf.Reader
	fonts map[string]*pdf.Font
	next  int
}

// Open opens the PDF at path. It returns a *FileError when the file cannot
// be read and a *FormatError when the parser rejects it. The caller must
// Close the returned Document to release the file handle.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &FileError{Path: path, Err: err}
	}

	r, err := newReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, &FormatError{Path: path, Err: err}
	}

	return &Document{
		path:  path,
		f:     f,
		r:     r,
		fonts: make(map[string]*pdf.Font),
		next:  1,
	}, nil
}

// newReader guards reader construction: this reader family panics on some
// malformed files instead of returning an error.
func newReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed document: %v", rec)
		}
	}()
	return pdf.NewReader(f, size)
}

// Path returns the source file path.
func (d *Document) Path() string { return d.path }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.r.NumPage() }

// Next returns the next page in source order. The second return value is
// false once all pages have been yielded. A page whose extraction fails is
// returned with Err set; iteration continues with the following page.
func (d *Document) Next() (types.Page, bool) {
	if d.next > d.r.NumPage() {
		return types.Page{}, false
	}
	idx := d.next
	d.next++

	text, err := d.pageText(idx)
	if err != nil {
		return types.Page{Index: idx, Err: &PageError{Page: idx, Err: err}}, true
	}
	return types.Page{Index: idx, Text: text}, true
}

// pageText extracts the plain text of one page, reusing fonts seen on
// earlier pages. Reader panics are converted to errors so one bad page
// cannot abort the whole document.
func (d *Document) pageText(idx int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page reader panic: %v", rec)
		}
	}()

	p := d.r.Page(idx)
	if p.V.IsNull() {
		return "", nil
	}

	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}

	return p.GetPlainText(d.fonts)
}

// Close releases the underlying file handle.
func (d *Document) Close() error { return d.f.Close() }
