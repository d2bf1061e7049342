package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logcheck/logcheck/internal/adapters/outbound/history"
	"github.com/logcheck/logcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:    "2026-02-25T10:00:00Z",
		Dir:          dir,
		CommitHash:   "abc1234",
		FilesChecked: 3,
		Errors:       2,
		Warnings:     1,
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", Errors: 4}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", Errors: 2}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", Errors: 0}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4, entries[0].Errors)
	assert.Equal(t, 0, entries[2].Errors)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nestedDir, domain.RunEntry{Timestamp: "t1"})
	require.NoError(t, err)

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistory_KeepsMostRecentRuns(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	for i := 0; i < history.MaxRuns+5; i++ {
		require.NoError(t, h.Save(dir, domain.RunEntry{FilesChecked: i}))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, history.MaxRuns)
	assert.Equal(t, 5, entries[0].FilesChecked)
	assert.Equal(t, history.MaxRuns+4, entries[len(entries)-1].FilesChecked)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".logcheck", "history"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".logcheck", "history", "runs.json"), []byte("{not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
