package internal

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner runs a version-control subcommand in a directory and returns
// its standard output. Implementations wrap os/exec; tests substitute fakes.
type CommandRunner interface {
	Run(dir string, name string, args ...string) (string, error)
}

// execRunner is the real CommandRunner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), err
		}
		return stdout.String(), fmt.Errorf("%w: %s", err, msg)
	}
	return stdout.String(), nil
}

// GitRecorder keeps a durable history of transcripts and metadata in a git
// repository rooted at the logs directory.
type GitRecorder struct {
	dir    string
	runner CommandRunner
}

// NewGitRecorder creates a recorder for the given directory using the real
// git executable.
func NewGitRecorder(dir string) *GitRecorder {
	return &GitRecorder{dir: dir, runner: execRunner{}}
}

// NewGitRecorderWithRunner creates a recorder with a custom runner.
func NewGitRecorderWithRunner(dir string, runner CommandRunner) *GitRecorder {
	return &GitRecorder{dir: dir, runner: runner}
}

const gitignoreContent = `# Temporary files
*.tmp
*.swp
.DS_Store
`

// EnsureRepository initializes a git repository in the logs directory if one
// does not exist yet. When the repository marker is already present this is
// a no-op and issues no commands.
func (g *GitRecorder) EnsureRepository() error {
	gitDir := filepath.Join(g.dir, ".git")
	if _, err := os.Stat(gitDir); err == nil {
		return nil
	}

	LogInfo("Initializing git repository for conversation logs in %s", g.dir)

	if _, err := g.runner.Run(g.dir, "git", "init"); err != nil {
		return &CommitError{Dir: g.dir, Err: fmt.Errorf("git init failed: %w", err)}
	}

	gitignorePath := filepath.Join(g.dir, ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0644); err != nil {
		return &CommitError{Dir: g.dir, Err: fmt.Errorf("failed to write .gitignore: %w", err)}
	}

	if _, err := g.runner.Run(g.dir, "git", "add", "."); err != nil {
		return &CommitError{Dir: g.dir, Err: fmt.Errorf("git add failed: %w", err)}
	}
	if _, err := g.runner.Run(g.dir, "git", "commit", "-m", "Initialize Claude conversation logs"); err != nil {
		return &CommitError{Dir: g.dir, Err: fmt.Errorf("initial commit failed: %w", err)}
	}

	return nil
}

// Commit stages exactly the given files and commits them with the message.
// On success it returns the short commit hash. On any git failure it returns
// the empty string: the session is still fully logged on disk, just not
// version-controlled.
func (g *GitRecorder) Commit(files []string, message string) string {
	args := append([]string{"add", "--"}, files...)
	if _, err := g.runner.Run(g.dir, "git", args...); err != nil {
		LogWarn("git add failed: %v", err)
		return ""
	}

	if _, err := g.runner.Run(g.dir, "git", "commit", "-m", message); err != nil {
		LogWarn("git commit failed: %v", err)
		return ""
	}

	out, err := g.runner.Run(g.dir, "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		LogWarn("git rev-parse failed: %v", err)
		return ""
	}

	lines := strings.SplitN(out, "\n", 2)
	return strings.TrimSpace(lines[0])
}

// Log returns the recent commit history, formatted for display.
func (g *GitRecorder) Log(count int) (string, error) {
	out, err := g.runner.Run(g.dir, "git", "log",
		"--pretty=format:%C(yellow)%h%C(reset) - %C(green)%ad%C(reset) - %C(bold)%s%C(reset)",
		"--date=relative",
		fmt.Sprintf("-%d", count))
	if err != nil {
		return "", &CommitError{Dir: g.dir, Err: fmt.Errorf("git log failed: %w", err)}
	}
	return out, nil
}

// SessionCommitMessage builds the commit message for a finalized session.
func SessionCommitMessage(record *SessionRecord) string {
	energy := ""
	if record.CreativeEnergy != nil {
		energy = fmt.Sprintf(" | Energy: %s", record.EnergyGlyphs())
	}

	return fmt.Sprintf("%s: %s (%.1fmin)%s\n\nSession ID: %s\nCommand: %s\n",
		record.Methodology,
		record.Project,
		record.DurationMinutes(),
		energy,
		record.ID,
		record.Command)
}
