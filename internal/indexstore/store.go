// Package indexstore persists the index as a JSON artifact on disk.
package indexstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"docindex/internal/domain"
)

// Anything smaller than this cannot be a decodable index document.
const minIndexSize = 2

// Save writes the index atomically: readers either see the previous artifact
// or the complete new one, never a torn write.
func Save(path string, idx *domain.Index) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

// Load reads and validates an index artifact. A missing file maps to
// ErrIndexNotFound; an undersized, truncated, or shape-violating file maps to
// ErrIndexCorrupt rather than silently producing empty results.
func Load(path string) (*domain.Index, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, path)
		}
		return nil, fmt.Errorf("stat index %s: %w", path, err)
	}
	if fi.Size() < minIndexSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", domain.ErrIndexCorrupt, path, fi.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}
	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrIndexCorrupt, path, err)
	}
	if err := validate(&idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrIndexCorrupt, path, err)
	}
	return &idx, nil
}

func validate(idx *domain.Index) error {
	if len(idx.Vectors) != len(idx.Docs) {
		return fmt.Errorf("%d vectors for %d docs", len(idx.Vectors), len(idx.Docs))
	}
	for i, vec := range idx.Vectors {
		if len(vec) != len(idx.Terms) {
			return fmt.Errorf("vector %d has %d entries, want %d", i, len(vec), len(idx.Terms))
		}
	}
	return nil
}
