package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/domain"
	"docindex/internal/search"
)

func sampleResults() search.Results {
	return search.Results{Hits: []search.Hit{
		{Doc: domain.Document{ID: "doc-1", Path: "/data/a.txt", Text: "the cat sat"}, Score: 0.91},
		{Doc: domain.Document{ID: "doc-2", Path: "/data/b.txt", Text: "the dog ran"}, Score: 0.12},
	}}
}

func TestRenderResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleResults(), "json", true, 100))

	var view resultView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	require.Len(t, view.Hits, 2)
	assert.Equal(t, "/data/a.txt", view.Hits[0].Path)
	require.NotNil(t, view.Hits[0].Score)
	assert.InDelta(t, 0.91, *view.Hits[0].Score, 1e-9)
}

func TestRenderResultsJSONWithoutScores(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleResults(), "json", false, 100))
	assert.NotContains(t, buf.String(), "score")
}

func TestRenderResultsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleResults(), "text", true, 100))
	out := buf.String()
	assert.Contains(t, out, "1. /data/a.txt")
	assert.Contains(t, out, "score=0.9100")
	assert.Contains(t, out, "the cat sat")
}

func TestRenderResultsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleResults(), "markdown", false, 100))
	out := buf.String()
	assert.Contains(t, out, "## Results")
	assert.Contains(t, out, "- **/data/a.txt**")
}

func TestRenderNoMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderNoMatch(&buf, "text"))
	assert.Contains(t, buf.String(), noMatchMessage)

	buf.Reset()
	require.NoError(t, renderNoMatch(&buf, "json"))
	var view resultView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.True(t, view.NoMatch)
}

func TestRenderAnswer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAnswer(&buf, "Cats sit.", sampleResults(), "json", false, 100))
	var view resultView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "Cats sit.", view.Answer)
	assert.Len(t, view.Hits, 2)
}
