// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2md/pkg/types"
)

func testRecord(source string, at time.Time) types.ConversionRecord {
	return types.ConversionRecord{
		SourcePath:  source,
		OutputPath:  "output/" + source + ".md",
		Pages:       3,
		FailedPages: 0,
		Status:      types.ConversionDone,
		ConvertedAt: at,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	first := testRecord("a.pdf", at)
	second := testRecord("b.pdf", at.Add(time.Minute))
	second.FailedPages = 1
	second.Status = types.ConversionPartial

	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, second))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "b.pdf", records[0].SourcePath)
	assert.Equal(t, types.ConversionPartial, records[0].Status)
	assert.Equal(t, 1, records[0].FailedPages)
	assert.True(t, records[0].ConvertedAt.Equal(second.ConvertedAt))

	assert.Equal(t, "a.pdf", records[1].SourcePath)
	assert.Equal(t, 3, records[1].Pages)
	assert.True(t, records[1].ConvertedAt.Equal(first.ConvertedAt))
}

func TestStoreListLimit(t *testing.T) {
	ctx := context.Background()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	at := time.Now().UTC()
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, store.Record(ctx, testRecord(name, at)))
	}

	records, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c.pdf", records[0].SourcePath)
}

func TestStoreReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, testRecord("kept.pdf", time.Now().UTC())))
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept.pdf", records[0].SourcePath)
}

func TestStoreEmptyList(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	records, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
