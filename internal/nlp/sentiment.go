package nlp

import (
	"strings"
	"unicode"

	"docindex/internal/domain"
)

// Lexicon-based sentiment scoring. The score lands in [0,1]; labels come
// from fixed thresholds: >0.6 Positive, <0.4 Negative, else Neutral.
const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
)

var positiveWords = wordSet(
	"good", "great", "excellent", "wonderful", "fantastic", "amazing", "awesome",
	"love", "happy", "joy", "pleased", "delighted", "satisfied", "perfect",
	"beautiful", "brilliant", "outstanding", "superb", "magnificent", "marvelous",
	"terrific", "fabulous", "exceptional", "impressive", "remarkable", "best",
	"better", "positive", "advantage", "benefit", "success", "successful",
	"win", "winner", "winning", "accomplished", "achievement", "triumph",
	"enjoy", "pleasant", "comfortable", "excited", "exciting", "thrilled",
	"approve", "approved", "approval", "like", "liked", "favorite", "prefer",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "poor", "worst", "worse",
	"hate", "angry", "sad", "upset", "disappointed", "dissatisfied", "unhappy",
	"fail", "failure", "failed", "problem", "issue", "wrong", "error",
	"difficult", "hard", "tough", "struggle", "struggling", "broken",
	"pain", "painful", "hurt", "hurting", "damage", "damaged", "disaster",
	"negative", "loss", "lose", "losing", "lost", "defeat", "defeated",
	"reject", "rejected", "rejection", "dislike", "disliked", "unpleasant",
	"uncomfortable", "disappointing", "frustrate", "frustrated", "frustrating",
)

var intensifiers = wordSet("very", "extremely", "absolutely", "really", "incredibly", "highly", "totally")

var negations = wordSet("not", "no", "never", "nothing", "nobody", "nowhere", "neither", "nor", "none")

// AnalyzeSentiment scores the text against the lexicons. Negation within the
// two preceding tokens flips a word's polarity; a directly preceding
// intensifier scales it by 1.5.
func AnalyzeSentiment(text string) domain.Sentiment {
	words := sentimentTokens(text)

	var positive, negative float64
	for i, word := range words {
		multiplier := 1.0
		if i > 0 {
			if _, ok := intensifiers[words[i-1]]; ok {
				multiplier = 1.5
			}
		}
		negated := false
		for back := 1; back <= 2 && i-back >= 0; back++ {
			if _, ok := negations[words[i-back]]; ok {
				negated = true
				break
			}
		}
		_, pos := positiveWords[word]
		_, neg := negativeWords[word]
		switch {
		case pos && !negated, neg && negated:
			positive += multiplier
		case neg && !negated, pos && negated:
			negative += multiplier
		}
	}

	total := positive + negative
	if total == 0 {
		return domain.Sentiment{Label: domain.SentimentNeutral, Score: 0.5}
	}
	score := 0.5 + 0.5*(positive-negative)/total
	label := domain.SentimentNeutral
	switch {
	case score > positiveThreshold:
		label = domain.SentimentPositive
	case score < negativeThreshold:
		label = domain.SentimentNegative
	}
	return domain.Sentiment{Label: label, Score: score}
}

// sentimentTokens splits on non-alphanumeric boundaries but keeps
// apostrophes, so contractions stay intact for lexicon lookup.
func sentimentTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
