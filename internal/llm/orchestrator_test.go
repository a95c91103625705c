package llm

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/domain"
	"docindex/internal/search"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based subprocess tests are unix-only")
	}
}

func TestExecuteAnswer(t *testing.T) {
	requireUnix(t)
	o := New("sh", "", 5*time.Second, time.Second, nil)
	out := o.execute(context.Background(), []string{"sh", "-c", "echo hello"})
	require.Equal(t, OutcomeAnswer, out.Kind)
	assert.Equal(t, "hello", out.Answer)
}

func TestExecuteProcessError(t *testing.T) {
	requireUnix(t)
	o := New("sh", "", 5*time.Second, time.Second, nil)
	out := o.execute(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 3"})
	require.Equal(t, OutcomeProcessError, out.Kind)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "boom", out.Stderr)
}

func TestExecuteTimeoutKillsProcess(t *testing.T) {
	requireUnix(t)
	o := New("sh", "", time.Second, 500*time.Millisecond, nil)

	start := time.Now()
	out := o.execute(context.Background(), []string{"sh", "-c", "sleep 5"})
	elapsed := time.Since(start)

	require.Equal(t, OutcomeTimeout, out.Kind)
	// Timeout plus grace period, nowhere near the 5s sleep. cmd.Run has
	// returned, so the child is reaped.
	assert.Less(t, elapsed, 2500*time.Millisecond)
	assert.GreaterOrEqual(t, elapsed, time.Second)
}

func TestAskWithMissingBinary(t *testing.T) {
	o := New("definitely-not-a-real-model-runner", "mistral", time.Second, time.Second, nil)
	out := o.Ask(context.Background(), "question")
	assert.Equal(t, OutcomeNoModel, out.Kind)
}

func TestBuildPromptBoundsExcerpts(t *testing.T) {
	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'a'
	}
	hits := []search.Hit{
		{Doc: domain.Document{Path: "/data/a.txt", Text: string(long)}, Score: 0.9},
		{Doc: domain.Document{Path: "/data/b.txt", Text: "short"}, Score: 0.5},
	}
	prompt := BuildPrompt("what is this?", hits, 100)
	assert.Contains(t, prompt, "/data/a.txt")
	assert.Contains(t, prompt, "/data/b.txt")
	assert.Contains(t, prompt, "Question: what is this?")
	// The 5000-rune body must not leak in whole.
	assert.Less(t, len(prompt), 1000)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 100))
	cut := Excerpt("abcdefghij", 4)
	assert.Equal(t, "abcd...", cut)
}
