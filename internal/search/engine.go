// Package search ranks indexed documents against a free-text query by
// cosine similarity.
package search

import (
	"sort"

	"docindex/internal/domain"
	"docindex/internal/indexer"
)

// Hit is a single ranked document.
type Hit struct {
	Doc   domain.Document `json:"doc"`
	Score float64         `json:"score"`
}

// Results is the outcome of a ranking pass. NoMatch is set when the query
// shares no terms with the vocabulary; that is an explicit answer, not an
// error and not an arbitrary ranking.
type Results struct {
	Hits    []Hit `json:"hits"`
	NoMatch bool  `json:"no_match"`
}

// Engine ranks documents of a loaded index. It never mutates the index and
// never grows the vocabulary at query time.
type Engine struct {
	idx       *domain.Index
	termIndex map[string]int
}

func NewEngine(idx *domain.Index) *Engine {
	ti := make(map[string]int, len(idx.Terms))
	for i, t := range idx.Terms {
		ti[t] = i
	}
	return &Engine{idx: idx, termIndex: ti}
}

// Index returns the underlying index.
func (e *Engine) Index() *domain.Index { return e.idx }

// Vectorize builds a normalized query vector over the fixed vocabulary.
// Query terms absent from the vocabulary contribute zero weight.
func (e *Engine) Vectorize(query string) []float64 {
	vec := make([]float64, len(e.idx.Terms))
	for _, t := range indexer.Tokenize(query) {
		if i, ok := e.termIndex[t]; ok {
			vec[i]++
		}
	}
	indexer.Normalize(vec)
	return vec
}

// Query ranks every document by dot product against the query vector
// (vectors are pre-normalized) and returns the top k. Ties keep original
// document order so rankings are deterministic.
func (e *Engine) Query(query string, topK int) Results {
	vec := e.Vectorize(query)
	if allZero(vec) {
		return Results{NoMatch: true}
	}
	scores := make([]float64, len(e.idx.Vectors))
	for i, dv := range e.idx.Vectors {
		scores[i] = dot(vec, dv)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if topK <= 0 {
		topK = 3
	}
	if topK > len(order) {
		topK = len(order)
	}
	hits := make([]Hit, 0, topK)
	for _, i := range order[:topK] {
		hits = append(hits, Hit{Doc: e.idx.Docs[i], Score: scores[i]})
	}
	return Results{Hits: hits}
}

func allZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
