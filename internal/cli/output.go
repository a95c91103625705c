package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"docindex/internal/llm"
	"docindex/internal/search"
)

const noMatchMessage = "no relevant documents"

type hitView struct {
	ID      string   `json:"id"`
	Path    string   `json:"path"`
	Score   *float64 `json:"score,omitempty"`
	Excerpt string   `json:"excerpt"`
}

type resultView struct {
	Answer  string   `json:"answer,omitempty"`
	NoMatch bool     `json:"no_match,omitempty"`
	Hits    []hitView `json:"hits,omitempty"`
}

func renderNoMatch(w io.Writer, format string) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(resultView{NoMatch: true})
	}
	_, err := fmt.Fprintln(w, noMatchMessage)
	return err
}

func renderAnswer(w io.Writer, answer string, res search.Results, format string, showScores bool, excerptChars int) error {
	view := buildView(res, showScores, excerptChars)
	view.Answer = answer
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(view)
	case "markdown":
		if _, err := fmt.Fprintf(w, "## Answer\n\n%s\n\n", answer); err != nil {
			return err
		}
		return writeMarkdownHits(w, view.Hits)
	default:
		if _, err := fmt.Fprintln(w, answer); err != nil {
			return err
		}
		return writeTextHits(w, view.Hits)
	}
}

func renderResults(w io.Writer, res search.Results, format string, showScores bool, excerptChars int) error {
	view := buildView(res, showScores, excerptChars)
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(view)
	case "markdown":
		return writeMarkdownHits(w, view.Hits)
	default:
		return writeTextHits(w, view.Hits)
	}
}

func buildView(res search.Results, showScores bool, excerptChars int) resultView {
	view := resultView{NoMatch: res.NoMatch}
	for _, h := range res.Hits {
		hv := hitView{
			ID:      h.Doc.ID,
			Path:    h.Doc.Path,
			Excerpt: strings.TrimSpace(llm.Excerpt(h.Doc.Text, excerptChars)),
		}
		if showScores {
			score := h.Score
			hv.Score = &score
		}
		view.Hits = append(view.Hits, hv)
	}
	return view
}

func writeTextHits(w io.Writer, hits []hitView) error {
	for i, h := range hits {
		header := fmt.Sprintf("%d. %s", i+1, h.Path)
		if h.Score != nil {
			header += fmt.Sprintf(" (score=%.4f)", *h.Score)
		}
		if _, err := fmt.Fprintf(w, "%s\n   %s\n", header, firstLine(h.Excerpt)); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownHits(w io.Writer, hits []hitView) error {
	if _, err := fmt.Fprintln(w, "## Results"); err != nil {
		return err
	}
	for _, h := range hits {
		line := fmt.Sprintf("- **%s**", h.Path)
		if h.Score != nil {
			line += fmt.Sprintf(" (%.4f)", *h.Score)
		}
		if _, err := fmt.Fprintf(w, "%s\n  > %s\n", line, firstLine(h.Excerpt)); err != nil {
			return err
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
