// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger", "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	started := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	require.NoError(t, store.Record(Run{
		Source:          "/docs/input.pdf",
		Pages:           3,
		ThumbsGenerated: 2,
		ThumbsFailed:    1,
		Renamed:         2,
		Skipped:         4,
		Errored:         0,
		StartedAt:       started,
	}))
	require.NoError(t, store.Record(Run{
		Source:    "/docs/other.pdf",
		Pages:     1,
		StartedAt: started.Add(time.Hour),
	}))

	runs, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, "/docs/other.pdf", runs[0].Source)
	assert.Equal(t, "/docs/input.pdf", runs[1].Source)

	got := runs[1]
	assert.Equal(t, 3, got.Pages)
	assert.Equal(t, 2, got.ThumbsGenerated)
	assert.Equal(t, 1, got.ThumbsFailed)
	assert.Equal(t, 2, got.Renamed)
	assert.Equal(t, 4, got.Skipped)
	assert.Equal(t, 0, got.Errored)
	assert.True(t, got.StartedAt.Equal(started))
	assert.Positive(t, got.ID)
}

func TestList_Limit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(Run{Source: "/docs/a.pdf", StartedAt: time.Now()}))
	}

	runs, err := store.List(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestList_Empty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_Reopens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Record(Run{Source: "/docs/a.pdf", StartedAt: time.Now()}))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.List(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
