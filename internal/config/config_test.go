package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "docindex_index.json", cfg.Query.IndexPath)
	assert.Equal(t, 3, cfg.Query.TopK)
	assert.Equal(t, "ollama", cfg.LLM.Command)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, 60, cfg.LLM.TimeoutSecs)
	assert.Equal(t, 5, cfg.Summarizer.MaxSentences)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  model: llama3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "ollama", cfg.LLM.Command)
	assert.Equal(t, "docindex_index.json", cfg.Query.IndexPath)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOCINDEX_INDEX", "/tmp/custom_index.json")
	t.Setenv("OLLAMA_MODEL", "phi3")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom_index.json", cfg.Query.IndexPath)
	assert.Equal(t, "phi3", cfg.LLM.Model)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "cfg.yaml")
	cfg := defaultConfig()
	cfg.Indexer.Workers = 7
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Indexer.Workers)
}
