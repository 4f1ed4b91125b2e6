package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

func TestTranscriptStore_RoundTrip(t *testing.T) {
	store := NewTranscriptStore()
	path := m.Path(filepath.Join(t.TempDir(), "transcript.txt"))

	text := "\n--- 1) Shared Fallback Buffer Trap ---\naddItemBad(1, nil): [1]\n"
	require.NoError(t, store.Save(path, text))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, text, loaded)
}

func TestTranscriptStore_SaveOverwrites(t *testing.T) {
	store := NewTranscriptStore()
	path := m.Path(filepath.Join(t.TempDir(), "transcript.txt"))

	require.NoError(t, store.Save(path, "first"))
	require.NoError(t, store.Save(path, "second"))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded)
}

func TestTranscriptStore_LoadMissing(t *testing.T) {
	store := NewTranscriptStore()

	_, err := store.Load(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load transcript")
}
