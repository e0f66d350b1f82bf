package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateProjectFixture creates a project directory with an optional
// methodology marker file and returns its path.
func CreateProjectFixture(t *testing.T, markerFirstLine string) string {
	t.Helper()
	dir := CreateTempDir(t)

	if markerFirstLine != "" {
		markerDir := filepath.Join(dir, ".claude")
		if err := os.MkdirAll(markerDir, 0755); err != nil {
			t.Fatalf("Failed to create marker directory: %v", err)
		}
		content := markerFirstLine + "\n\nMore project notes below.\n"
		if err := os.WriteFile(filepath.Join(markerDir, "CLAUDE.md"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write marker file: %v", err)
		}
	}

	return dir
}

// SampleTranscript is transcript body text with known metric counts:
// 3 human turns, 2 fenced code blocks (4 fence markers), 2 questions,
// 1 enthusiasm marker, 1 confusion marker, 1 compaction indicator.
const SampleTranscript = `Human: Can you add a retry to the fetcher?
Here is the current code:
` + "```go" + `
func fetch() error { return nil }
` + "```" + `
Assistant: Sure. What backoff policy do you want?
Human: Exponential, capped at a minute.
Assistant: Excellent! Here it is:
` + "```go" + `
func fetchWithRetry() error { return nil }
` + "```" + `
Human: Hmm, as we discussed the cap should be configurable.
`

// NeutralTranscript contains no recognized markers of any kind.
const NeutralTranscript = `The build finished without issues.
All twelve checks passed on the first attempt.
Nothing else happened during this period.
`

// CreateTranscriptFixture writes a transcript file and returns its path.
func CreateTranscriptFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	WriteFile(t, path, []byte(content))
	return path
}
