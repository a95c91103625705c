package nlp

import (
	"regexp"
	"sort"
	"strings"

	"docindex/internal/indexer"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Summarize selects the top maxSentences sentences by TF-IDF weight and
// returns them joined in original document order. Sentences act as the
// corpus for IDF purposes, using the same tokenizer and weighting as the
// index build. Scores divide by sentence length so long sentences get no
// free boost. maxSentences <= 0 selects 30% of the sentences, clamped to
// [2,5].
func Summarize(text string, maxSentences int) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return "(No content to summarize)"
	}
	if len(sentences) <= 3 {
		return strings.TrimSpace(text)
	}
	if maxSentences <= 0 {
		maxSentences = len(sentences) * 30 / 100
		if maxSentences < 2 {
			maxSentences = 2
		}
		if maxSentences > 5 {
			maxSentences = 5
		}
	}
	if maxSentences > len(sentences) {
		maxSentences = len(sentences)
	}

	tokens := make([][]string, len(sentences))
	df := make(map[string]int)
	for i, s := range sentences {
		tokens[i] = indexer.Tokenize(s)
		seen := make(map[string]struct{}, len(tokens[i]))
		for _, t := range tokens[i] {
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, toks := range tokens {
		scores[i] = scored{idx: i}
		if len(toks) == 0 {
			continue
		}
		counts := make(map[string]int, len(toks))
		for _, t := range toks {
			counts[t]++
		}
		total := float64(len(toks))
		sum := 0.0
		for t, c := range counts {
			sum += float64(c) / total * indexer.IDF(len(sentences), df[t])
		}
		scores[i].score = sum / total
	}
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].score > scores[b].score })

	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " ")
}

// SplitSentences breaks text into sentences on terminal punctuation,
// dropping empty pieces.
func SplitSentences(text string) []string {
	raw := sentenceRe.FindAllString(text, -1)
	out := raw[:0]
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
