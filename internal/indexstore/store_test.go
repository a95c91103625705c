package indexstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/domain"
)

func sampleIndex() *domain.Index {
	return &domain.Index{
		Docs: []domain.Document{
			{ID: "doc-1", Path: "/data/a.txt", Text: "the cat sat"},
			{ID: "doc-2", Path: "/data/b.txt", Text: "the dog ran"},
		},
		Terms: []string{"the", "cat", "sat", "dog", "ran"},
		Vectors: [][]float64{
			{0, 0.7, 0.7, 0, 0},
			{0, 0, 0, 0.7, 0.7},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	want := sampleIndex()
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoadUndersizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"docs": [truncated`), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestLoadShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.json")
	// Two docs, one vector.
	payload := `{"docs":[{"id":"a","path":"a.txt","text":""},{"id":"b","path":"b.txt","text":""}],"terms":["x"],"vectors":[[0.5]]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestLoadRowLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	payload := `{"docs":[{"id":"a","path":"a.txt","text":""}],"terms":["x","y"],"vectors":[[0.5]]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestSaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, Save(path, sampleIndex()))

	updated := sampleIndex()
	updated.Docs = updated.Docs[:1]
	updated.Vectors = updated.Vectors[:1]
	require.NoError(t, Save(path, updated))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Docs, 1)
}
