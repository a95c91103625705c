// Package llm invokes a locally running language-model process with ranked
// context. The call is strictly optional: indexing and similarity ranking
// never depend on it, and every failure mode degrades to the ranked excerpts.
package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"docindex/internal/search"
)

// OutcomeKind discriminates the possible results of a model invocation.
type OutcomeKind int

const (
	OutcomeAnswer OutcomeKind = iota
	OutcomeTimeout
	OutcomeProcessError
	OutcomeNoModel
)

// Outcome is the result of one model invocation.
type Outcome struct {
	Kind     OutcomeKind
	Answer   string
	ExitCode int
	Stderr   string
}

// Orchestrator runs `<Command> run <Model> <prompt>` with a hard wall-clock
// timeout. On expiry the process gets a terminate signal, then a kill after
// the grace period; the process is reaped on every exit path.
type Orchestrator struct {
	Command string
	Model   string
	Timeout time.Duration
	Grace   time.Duration

	log *slog.Logger
}

func New(command, model string, timeout, grace time.Duration, log *slog.Logger) *Orchestrator {
	if command == "" {
		command = "ollama"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if grace <= 0 {
		grace = 2 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{Command: command, Model: model, Timeout: timeout, Grace: grace, log: log}
}

// Ask sends the prompt to the model. A missing model binary is reported as
// OutcomeNoModel so the caller can fall back to ranked excerpts.
func (o *Orchestrator) Ask(ctx context.Context, prompt string) Outcome {
	if _, err := exec.LookPath(o.Command); err != nil {
		o.log.Warn("model binary not found", "command", o.Command)
		return Outcome{Kind: OutcomeNoModel}
	}
	return o.execute(ctx, []string{o.Command, "run", o.Model, prompt})
}

func (o *Orchestrator) execute(ctx context.Context, argv []string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Graceful shutdown first; WaitDelay escalates to SIGKILL.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = o.Grace

	start := time.Now()
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		o.log.Warn("model timed out", "command", argv[0], "after", time.Since(start))
		return Outcome{Kind: OutcomeTimeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Outcome{
				Kind:     OutcomeProcessError,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return Outcome{Kind: OutcomeProcessError, ExitCode: -1, Stderr: err.Error()}
	}
	return Outcome{Kind: OutcomeAnswer, Answer: strings.TrimSpace(stdout.String())}
}

// BuildPrompt assembles a bounded context from the ranked hits. Only a
// capped excerpt of each document goes into the prompt, never the full raw
// text.
func BuildPrompt(question string, hits []search.Hit, excerptChars int) string {
	var b strings.Builder
	b.WriteString("Use the following documents as context:\n")
	for _, h := range hits {
		b.WriteString("Document: ")
		b.WriteString(h.Doc.Path)
		b.WriteByte('\n')
		b.WriteString(Excerpt(h.Doc.Text, excerptChars))
		b.WriteString("\n---\n")
	}
	b.WriteString("Question: ")
	b.WriteString(question)
	return b.String()
}

// Excerpt truncates text to at most limit runes, marking the cut.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		limit = 1000
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
