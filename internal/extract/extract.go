// Package extract converts file bytes into plain text, dispatched by
// extension.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"docindex/internal/domain"
)

// Extractor converts a file into plain text.
type Extractor interface {
	Extract(path string) (string, error)
}

// ForPath resolves the extractor variant for a file. Unknown extensions
// return ErrUnsupportedFormat; the walker filters those out before dispatch,
// so callers hitting it are feeding in arbitrary paths directly.
func ForPath(path string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".csv", ".json":
		return plainText{}, nil
	case ".pdf":
		return pdfText{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

// Text is a convenience wrapper resolving the extractor and running it.
func Text(path string) (string, error) {
	ex, err := ForPath(path)
	if err != nil {
		return "", err
	}
	return ex.Extract(path)
}

type plainText struct{}

// Extract reads the file as UTF-8, replacing malformed byte runs instead of
// failing the whole file.
func (plainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

type pdfText struct{}

// Extract pulls the embedded text streams out of a PDF. Image-only scans
// yield empty text, which is not an error.
func (pdfText) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text from %s: %w", path, err)
	}
	return buf.String(), nil
}
