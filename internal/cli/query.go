package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"docindex/internal/indexstore"
	"docindex/internal/llm"
	"docindex/internal/logging"
	"docindex/internal/search"
)

func NewQueryCmd() *cobra.Command {
	var (
		indexPath  string
		queryText  string
		topK       int
		model      string
		format     string
		showScores bool
		noLLM      bool
	)

	cmd := &cobra.Command{
		Use:   "query -i <file> -q <text>",
		Short: "Rank indexed documents against a query, optionally asking a local model",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent("query")

			if indexPath == "" {
				indexPath = cfg.Query.IndexPath
			}
			idx, err := indexstore.Load(indexPath)
			if err != nil {
				return err
			}
			engine := search.NewEngine(idx)
			if topK <= 0 {
				topK = cfg.Query.TopK
			}
			res := engine.Query(queryText, topK)
			if res.NoMatch {
				return renderNoMatch(os.Stdout, format)
			}

			if model == "" {
				model = cfg.LLM.Model
			}
			if model != "" && !noLLM {
				orch := llm.New(
					cfg.LLM.Command,
					model,
					time.Duration(cfg.LLM.TimeoutSecs)*time.Second,
					time.Duration(cfg.LLM.GraceSecs)*time.Second,
					logging.WithComponent("llm"),
				)
				prompt := llm.BuildPrompt(queryText, res.Hits, cfg.LLM.ExcerptChars)
				outcome := orch.Ask(cmd.Context(), prompt)
				switch outcome.Kind {
				case llm.OutcomeAnswer:
					return renderAnswer(os.Stdout, outcome.Answer, res, format, showScores, cfg.LLM.ExcerptChars)
				case llm.OutcomeTimeout:
					log.Warn("model timed out, returning ranked excerpts")
				case llm.OutcomeProcessError:
					log.Warn("model failed, returning ranked excerpts", "exit_code", outcome.ExitCode, "stderr", outcome.Stderr)
				case llm.OutcomeNoModel:
					log.Warn("no model available, returning ranked excerpts")
				}
			}
			return renderResults(os.Stdout, res, format, showScores, cfg.LLM.ExcerptChars)
		},
	}

	cmd.Flags().StringVarP(&indexPath, "index", "i", "", "index file (default from config or DOCINDEX_INDEX)")
	cmd.Flags().StringVarP(&queryText, "query", "q", "", "free-text query")
	_ = cmd.MarkFlagRequired("query")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of documents to return (default from config)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "local model to synthesize an answer with (default from config or OLLAMA_MODEL)")
	cmd.Flags().BoolVar(&showScores, "show-scores", false, "include similarity scores in the output")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or markdown")
	cmd.Flags().BoolVar(&noLLM, "no-llm", false, "never invoke the model, even when one is configured")
	return cmd
}
