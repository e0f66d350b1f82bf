package internal

import (
	"fmt"
	"os"
	"time"
)

// CreateTestRecord creates a finished session record with sample data
func CreateTestRecord(id string, methodology Methodology, logFile string) *SessionRecord {
	duration := 60.0
	start := time.Now().Add(-time.Minute)
	return &SessionRecord{
		ID:               id,
		Timestamp:        start.Format(time.RFC3339),
		Project:          "test-project",
		Methodology:      methodology,
		WorkingDirectory: "/tmp/test-project",
		Command:          "claude",
		LogFile:          logFile,
		Duration:         &duration,
		EndTime:          start.Add(time.Minute).Format(time.RFC3339),
		FeaturesWorkedOn: []string{},
	}
}

// FakeRunner is a CommandRunner that records issued commands and replays
// scripted responses.
type FakeRunner struct {
	Calls   [][]string
	Outputs map[string]string // keyed by first git subcommand, e.g. "rev-parse"
	Fail    map[string]bool
}

// NewFakeRunner creates a FakeRunner with empty scripts
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs: make(map[string]string),
		Fail:    make(map[string]bool),
	}
}

func (f *FakeRunner) Run(dir string, name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	f.Calls = append(f.Calls, call)

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	if f.Fail[sub] {
		return "", fmt.Errorf("fake %s %s failed", name, sub)
	}
	return f.Outputs[sub], nil
}

// FakeCapturer is a Capturer that appends canned transcript content to the
// log file and returns a fixed outcome.
type FakeCapturer struct {
	Transcript string
	Outcome    ExecOutcome
	Err        error
	LogFile    string
	Command    string
}

func (f *FakeCapturer) Capture(logFile string, command string) (ExecOutcome, error) {
	f.LogFile = logFile
	f.Command = command
	if f.Transcript != "" {
		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			_, _ = file.WriteString(f.Transcript)
			_ = file.Close()
		}
	}
	return f.Outcome, f.Err
}
