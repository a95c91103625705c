package indexer

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize lowercases text and splits it into alphanumeric terms on
// non-alphanumeric boundaries. Empty tokens are discarded by construction.
// Queries must be tokenized with this exact function to stay aligned with
// the vocabulary.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}
