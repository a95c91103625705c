package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/domain"
)

func TestForPathDispatch(t *testing.T) {
	for _, ext := range []string{".txt", ".md", ".csv", ".json", ".TXT", ".Md"} {
		_, err := ForPath("doc" + ext)
		assert.NoError(t, err, ext)
	}
	_, err := ForPath("doc.pdf")
	assert.NoError(t, err)

	_, err = ForPath("doc.exe")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	_, err = ForPath("noextension")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestPlainTextExtract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	text, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestPlainTextRepairsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte{'h', 'i', 0xff, 0xfe, '!'}, 0o644))

	text, err := Text(path)
	require.NoError(t, err)
	assert.Contains(t, text, "hi")
	assert.Contains(t, text, "!")
	assert.True(t, strings.Contains(text, "�"))
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
