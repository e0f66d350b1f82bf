package internal

import (
	"fmt"
	"os"
	"strings"
	"time"
)

var transcriptSeparator = strings.Repeat("=", 50)

// TranscriptName returns the transcript filename for a session.
func TranscriptName(project string, methodology Methodology, sessionID string) string {
	return fmt.Sprintf("claude_%s_%s_%s.log", project, methodology, sessionID)
}

// WriteTranscriptHeader creates the transcript file and writes the session
// header block, ending with a separator line and a blank line. The captured
// terminal output is appended after this by the capture utility.
func WriteTranscriptHeader(path string, record *SessionRecord) error {
	var b strings.Builder
	b.WriteString("=== Claude CLI Session Started ===\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", record.Timestamp)
	fmt.Fprintf(&b, "Project: %s\n", record.Project)
	fmt.Fprintf(&b, "Methodology: %s\n", record.Methodology)
	fmt.Fprintf(&b, "Working Directory: %s\n", record.WorkingDirectory)
	fmt.Fprintf(&b, "Command: %s\n", record.Command)
	b.WriteString(transcriptSeparator + "\n\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write transcript header: %w", err)
	}
	return nil
}

// AppendTranscriptFooter appends the session end block to the transcript.
// It runs on the cleanup path and must succeed even after an abnormal exit
// of the wrapped process, so the file is opened in append mode.
func AppendTranscriptFooter(path string, endTime time.Time, duration float64) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open transcript for footer: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	b.WriteString("\n\n" + transcriptSeparator + "\n")
	b.WriteString("=== Claude CLI Session Ended ===\n")
	fmt.Fprintf(&b, "End Time: %s\n", endTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration: %.2f seconds\n", duration)
	b.WriteString(transcriptSeparator + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append transcript footer: %w", err)
	}
	return nil
}
