package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"docindex/internal/domain"
	"docindex/internal/extract"
	"docindex/internal/indexer"
	"docindex/internal/indexstore"
	"docindex/internal/logging"
	"docindex/internal/walker"
)

func NewIndexCmd() *cobra.Command {
	var (
		dir            string
		out            string
		excludePattern string
		maxFileSize    string
	)

	cmd := &cobra.Command{
		Use:   "index -d <dir> -o <file>",
		Short: "Walk a directory, extract text, and build the TF-IDF index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.Context(), dir, out, excludePattern, maxFileSize)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "root directory to index")
	_ = cmd.MarkFlagRequired("dir")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output index file (default from config)")
	cmd.Flags().StringVar(&excludePattern, "exclude-pattern", "", "glob pattern of paths to skip, relative to the root")
	cmd.Flags().StringVar(&maxFileSize, "max-file-size", "", "skip files larger than this (e.g. 10MB, 512kB)")
	return cmd
}

func runIndex(ctx context.Context, dir, out, excludePattern, maxFileSize string) error {
	log := logging.WithComponent("index")

	if out == "" {
		out = cfg.Query.IndexPath
	}
	if excludePattern == "" {
		excludePattern = cfg.Indexer.ExcludePattern
	}
	if maxFileSize == "" {
		maxFileSize = cfg.Indexer.MaxFileSize
	}
	var maxSize int64
	if maxFileSize != "" {
		sz, err := units.FromHumanSize(maxFileSize)
		if err != nil {
			return fmt.Errorf("invalid --max-file-size %q: %w", maxFileSize, err)
		}
		maxSize = sz
	}

	// Resolve paths up front; nothing below depends on the working directory.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return err
	}

	paths, err := walker.Walk(absDir, walker.Options{Exclude: excludePattern, MaxSize: maxSize})
	if err != nil {
		return err
	}

	docs := make([]domain.Document, 0, len(paths))
	skipped := 0
	for _, p := range paths {
		text, err := extract.Text(p)
		if err != nil {
			log.Warn("skipping file, extraction failed", "path", p, "error", err)
			skipped++
			continue
		}
		docs = append(docs, domain.Document{ID: indexer.DocID(p), Path: p, Text: text})
	}

	idx, err := indexer.New(cfg.Indexer.Workers).Build(ctx, docs)
	if err != nil {
		return err
	}
	if err := indexstore.Save(absOut, idx); err != nil {
		return err
	}
	log.Info("index written", "out", absOut, "docs", len(idx.Docs), "terms", len(idx.Terms), "skipped", skipped)

	summary := struct {
		Indexed int    `json:"indexed"`
		Skipped int    `json:"skipped"`
		Terms   int    `json:"terms"`
		Out     string `json:"out"`
	}{len(idx.Docs), skipped, len(idx.Terms), absOut}
	return json.NewEncoder(os.Stdout).Encode(summary)
}
