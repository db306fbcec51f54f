// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// writePDF renders one page per entry and writes the document to path.
func writePDF(t *testing.T, path string, pages []string) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		doc.MultiCell(190, 8, text, "", "L", false)
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a PDF document"), 0o644))

	_, err := Open(path)
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestDocumentPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two-pages.pdf")
	writePDF(t, path, []string{"Hello first page", "Hello second page"})

	doc, err := Open(path)
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, path, doc.Path())
	assert.Equal(t, 2, doc.PageCount())

	var pages []types.Page
	for {
		page, ok := doc.Next()
		if !ok {
			break
		}
		pages = append(pages, page)
	}

	require.Len(t, pages, 2)
	for i, page := range pages {
		assert.Equal(t, i+1, page.Index, "pages must arrive in source order")
		assert.NoError(t, page.Err)
	}
	assert.Contains(t, pages[0].Text, "Hello first page")
	assert.Contains(t, pages[1].Text, "Hello second page")

	// The sequence is finite and not restartable.
	_, ok := doc.Next()
	assert.False(t, ok)
}

func TestDocumentClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.pdf")
	writePDF(t, path, []string{"lone page"})

	doc, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, doc.Close())
}

func TestErrorMessages(t *testing.T) {
	fileErr := &FileError{Path: "a.pdf", Err: os.ErrNotExist}
	assert.Contains(t, fileErr.Error(), "a.pdf")
	assert.ErrorIs(t, fileErr, os.ErrNotExist)

	pageErr := &PageError{Page: 3, Err: os.ErrInvalid}
	assert.Contains(t, pageErr.Error(), "page 3")
	assert.ErrorIs(t, pageErr, os.ErrInvalid)
}
