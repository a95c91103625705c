package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docindex/internal/nlp"
)

func NewNerCmd() *cobra.Command {
	var input, out string
	cmd := &cobra.Command{
		Use:   "ner -i <path>",
		Short: "Extract named entities from a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, err := nlp.ExtractEntitiesFile(input)
			if err != nil {
				return err
			}
			return writeJSON(entities, out)
		},
	}
	addNlpFlags(cmd, &input, &out)
	return cmd
}

func NewSentimentCmd() *cobra.Command {
	var input, out string
	cmd := &cobra.Command{
		Use:   "sentiment -i <path>",
		Short: "Score the sentiment of a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentiment, err := nlp.AnalyzeSentimentFile(input)
			if err != nil {
				return err
			}
			return writeJSON(sentiment, out)
		},
	}
	addNlpFlags(cmd, &input, &out)
	return cmd
}

func NewSummarizeCmd() *cobra.Command {
	var input, out string
	cmd := &cobra.Command{
		Use:   "summarize -i <path>",
		Short: "Produce an extractive summary of a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := nlp.SummarizeFile(input, cfg.Summarizer.MaxSentences)
			if err != nil {
				return err
			}
			return writeJSON(struct {
				Summary string `json:"summary"`
			}{summary}, out)
		},
	}
	addNlpFlags(cmd, &input, &out)
	return cmd
}

func addNlpFlags(cmd *cobra.Command, input, out *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "input document")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(out, "out", "o", "", "write the JSON result to a file instead of stdout")
}

// writeJSON emits the result to stdout, or to a file when out is set.
func writeJSON(v any, out string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	return os.WriteFile(abs, data, 0o644)
}
