package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionRecorder drives one session from invocation to a fully committed
// record: transcript with header and footer, metadata entry, git commit.
type SessionRecorder struct {
	logsDir  string
	store    *MetadataStore
	git      *GitRecorder
	capturer Capturer

	// seams for tests
	now    func() time.Time
	stdin  io.Reader
	stdout io.Writer
}

// NewSessionRecorder creates a recorder for the given logs directory,
// creating the directory and its git repository if needed. An uncreatable
// directory is fatal; a git failure only degrades version control.
func NewSessionRecorder(logsDir string) (*SessionRecorder, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory %s: %w", logsDir, err)
	}

	git := NewGitRecorder(logsDir)
	if err := git.EnsureRepository(); err != nil {
		LogWarn("Git repository unavailable, sessions will not be version-controlled: %v", err)
	}

	return &SessionRecorder{
		logsDir:  logsDir,
		store:    NewMetadataStore(filepath.Join(logsDir, MetadataFileName)),
		git:      git,
		capturer: ScriptCapturer{},
		now:      time.Now,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}, nil
}

// NewSessionRecorderForTest wires a recorder with explicit collaborators.
func NewSessionRecorderForTest(logsDir string, runner CommandRunner, capturer Capturer, now func() time.Time, stdin io.Reader, stdout io.Writer) *SessionRecorder {
	return &SessionRecorder{
		logsDir:  logsDir,
		store:    NewMetadataStore(filepath.Join(logsDir, MetadataFileName)),
		git:      NewGitRecorderWithRunner(logsDir, runner),
		capturer: capturer,
		now:      now,
		stdin:    stdin,
		stdout:   stdout,
	}
}

// Store exposes the metadata store (used by list/show/analyze commands).
func (r *SessionRecorder) Store() *MetadataStore {
	return r.store
}

// Git exposes the version-control recorder.
func (r *SessionRecorder) Git() *GitRecorder {
	return r.git
}

// RunResult reports what happened to one recorded session.
type RunResult struct {
	Record   *SessionRecord
	CommitID string // empty when the commit failed (degraded, non-fatal)
	ExitCode int    // the wrapped process's own exit code, 130 on interrupt
}

// BuildCommand reconstructs the invocation string passed to the assistant.
func BuildCommand(assistantArgs []string) string {
	if len(assistantArgs) == 0 {
		return "claude"
	}
	return "claude " + strings.Join(assistantArgs, " ")
}

// Run executes one full session lifecycle in the given working directory.
// The metadata document is loaded before the wrapped process starts so a
// broken document fails fast instead of losing a finished session.
func (r *SessionRecorder) Run(workDir string, assistantArgs []string, trackEnergy bool) (*RunResult, error) {
	meta, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	start := r.now()
	record := r.newRecord(start, workDir, assistantArgs)

	if err := WriteTranscriptHeader(record.LogFile, record); err != nil {
		return nil, err
	}

	fmt.Fprintf(r.stdout, "Starting Claude session - logging to: %s\n", record.LogFile)

	outcome, captureErr := r.capturer.Capture(record.LogFile, record.Command)
	if captureErr != nil {
		LogError("Failed to run capture utility: %v", captureErr)
	}
	if outcome.Interrupted {
		fmt.Fprintln(r.stdout, "\nSession interrupted")
	}

	// Everything below runs regardless of how the wrapped process ended.
	commitID, finalizeErr := r.finalize(meta, record, start, trackEnergy)

	r.printSummary(record, commitID)

	result := &RunResult{Record: record, CommitID: commitID, ExitCode: outcome.Code}
	if finalizeErr != nil {
		return result, finalizeErr
	}
	return result, captureErr
}

func (r *SessionRecorder) newRecord(start time.Time, workDir string, assistantArgs []string) *SessionRecord {
	sessionID := start.Format("20060102_150405")
	project := filepath.Base(workDir)
	methodology := DetectMethodology(workDir)

	return &SessionRecord{
		ID:               sessionID,
		Timestamp:        start.Format(time.RFC3339),
		Project:          project,
		Methodology:      methodology,
		WorkingDirectory: workDir,
		Command:          BuildCommand(assistantArgs),
		LogFile:          filepath.Join(r.logsDir, TranscriptName(project, methodology, sessionID)),
		FeaturesWorkedOn: []string{},
	}
}

// finalize runs the unconditional cleanup sequence: duration and end time,
// transcript footer, optional energy capture, metadata append and persist,
// git commit. Each step proceeds even if an earlier one failed; the first
// error is returned after all steps have run.
func (r *SessionRecorder) finalize(meta *SessionsMetadata, record *SessionRecord, start time.Time, trackEnergy bool) (string, error) {
	end := r.now()
	duration := end.Sub(start).Seconds()
	record.Duration = &duration
	record.EndTime = end.Format(time.RFC3339)

	var firstErr error
	if err := AppendTranscriptFooter(record.LogFile, end, duration); err != nil {
		LogError("Failed to append transcript footer: %v", err)
		firstErr = err
	}

	if trackEnergy {
		record.CreativeEnergy = PromptEnergy(r.stdin, r.stdout)
	}

	meta.Add(record)
	if err := r.store.Save(meta); err != nil {
		LogError("Failed to save session metadata: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	commitID := r.git.Commit(
		[]string{filepath.Base(record.LogFile), MetadataFileName},
		SessionCommitMessage(record),
	)

	return commitID, firstErr
}

func (r *SessionRecorder) printSummary(record *SessionRecord, commitID string) {
	fmt.Fprintf(r.stdout, "\n📝 Session logged to: %s\n", record.LogFile)
	fmt.Fprintf(r.stdout, "📊 Methodology: %s\n", record.Methodology)
	if record.Duration != nil {
		fmt.Fprintf(r.stdout, "⏱️  Duration: %.2f seconds (%.1f minutes)\n", *record.Duration, record.DurationMinutes())
	}
	if commitID != "" {
		fmt.Fprintf(r.stdout, "🔒 Git commit: %s\n", commitID)
	}
	if record.CreativeEnergy != nil {
		fmt.Fprintf(r.stdout, "🔋 Creative Energy: %s\n", record.EnergyGlyphs())
	}
}
