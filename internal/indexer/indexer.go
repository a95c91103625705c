// Package indexer builds the TF-IDF index over a document collection.
//
// For term t in document d: tf(t,d) = count(t in d) / total_terms(d), and
// idf(t) = ln(N / (1 + df(t))) clamped at zero, so a term occurring in every
// document carries no weight and all weights stay non-negative. Each document
// vector is L2-normalized so cosine similarity reduces to a dot product.
package indexer

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"docindex/internal/domain"
)

// Indexer turns documents into a vocabulary and aligned weighted vectors.
type Indexer struct {
	workers int
}

// New creates an indexer with the given worker-pool size. Zero or negative
// means one worker per CPU core.
func New(workers int) *Indexer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Indexer{workers: workers}
}

// Build computes the full index. Tokenization and per-document weighting run
// across the worker pool; the vocabulary and document-frequency merge between
// them is sequential. Vocabulary order is first-seen order across documents.
func (ix *Indexer) Build(ctx context.Context, docs []domain.Document) (*domain.Index, error) {
	tokens := make([][]string, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.workers)
	for i := range docs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens[i] = Tokenize(docs[i].Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	termIndex := make(map[string]int)
	var terms []string
	var df []int
	for _, toks := range tokens {
		seen := make(map[int]struct{}, len(toks))
		for _, t := range toks {
			idx, ok := termIndex[t]
			if !ok {
				idx = len(terms)
				termIndex[t] = idx
				terms = append(terms, t)
				df = append(df, 0)
			}
			if _, dup := seen[idx]; !dup {
				seen[idx] = struct{}{}
				df[idx]++
			}
		}
	}
	idf := idfTable(len(docs), df)

	vectors := make([][]float64, len(docs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(ix.workers)
	for i := range docs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vectors[i] = weigh(tokens[i], termIndex, idf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.Index{Docs: docs, Terms: terms, Vectors: vectors}, nil
}

// weigh computes the normalized TF-IDF vector for one document's tokens. A
// document with zero tokens gets an all-zero vector.
func weigh(tokens []string, termIndex map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))
	if len(tokens) == 0 {
		return vec
	}
	counts := make(map[int]int, len(tokens))
	for _, t := range tokens {
		counts[termIndex[t]]++
	}
	total := float64(len(tokens))
	for idx, c := range counts {
		vec[idx] = float64(c) / total * idf[idx]
	}
	Normalize(vec)
	return vec
}

func idfTable(n int, df []int) []float64 {
	idf := make([]float64, len(df))
	if n == 0 {
		return idf
	}
	for i, d := range df {
		idf[i] = IDF(n, d)
	}
	return idf
}

// IDF is ln(n / (1 + df)) clamped at zero. The clamp keeps weights
// non-negative: a term present in every document scores nothing.
func IDF(n, df int) float64 {
	if n == 0 {
		return 0
	}
	v := math.Log(float64(n) / (1 + float64(df)))
	if v < 0 {
		return 0
	}
	return v
}

// Normalize scales vec to unit L2 norm in place. An all-zero vector is left
// untouched.
func Normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// DocID derives a stable document ID from its path, so re-indexing the same
// file yields the same ID.
func DocID(path string) string {
	h := sha1.Sum([]byte(path))
	return "doc-" + hex.EncodeToString(h[:8])
}
