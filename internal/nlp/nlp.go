// Package nlp performs rule-based text analytics: pattern NER,
// lexicon-based sentiment scoring, and extractive summarization. It works on
// raw extracted text, independent of the retrieval index.
package nlp

import (
	"docindex/internal/domain"
	"docindex/internal/extract"
)

// ExtractEntitiesFile extracts text from a file and runs entity recognition.
func ExtractEntitiesFile(path string) ([]domain.Entity, error) {
	text, err := extract.Text(path)
	if err != nil {
		return nil, err
	}
	return ExtractEntities(text), nil
}

// AnalyzeSentimentFile extracts text from a file and scores its sentiment.
func AnalyzeSentimentFile(path string) (domain.Sentiment, error) {
	text, err := extract.Text(path)
	if err != nil {
		return domain.Sentiment{}, err
	}
	return AnalyzeSentiment(text), nil
}

// SummarizeFile extracts text from a file and summarizes it.
func SummarizeFile(path string, maxSentences int) (string, error) {
	text, err := extract.Text(path)
	if err != nil {
		return "", err
	}
	return Summarize(text, maxSentences), nil
}
