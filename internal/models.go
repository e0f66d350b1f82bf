package internal

import (
	"fmt"
	"strings"
	"time"
)

// Methodology classifies how a project directs the assistant.
type Methodology string

const (
	MethodologyContextDriven Methodology = "context-driven"
	MethodologyCommandBased  Methodology = "command-based"
	MethodologyUnknown       Methodology = "unknown"
)

// Valid reports whether m is one of the known methodology values.
func (m Methodology) Valid() bool {
	switch m {
	case MethodologyContextDriven, MethodologyCommandBased, MethodologyUnknown:
		return true
	}
	return false
}

// SessionRecord describes one logged assistant session. Records are
// append-only: once persisted they are never mutated or deleted.
type SessionRecord struct {
	ID               string      `json:"id" yaml:"id"`
	Timestamp        string      `json:"timestamp" yaml:"timestamp"`
	Project          string      `json:"project" yaml:"project"`
	Methodology      Methodology `json:"methodology" yaml:"methodology"`
	WorkingDirectory string      `json:"working_directory" yaml:"working_directory"`
	Command          string      `json:"command" yaml:"command"`
	LogFile          string      `json:"log_file" yaml:"log_file"`
	Duration         *float64    `json:"duration" yaml:"duration"`
	EndTime          string      `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	FeaturesWorkedOn []string    `json:"features_worked_on" yaml:"features_worked_on"`
	CreativeEnergy   *int        `json:"creative_energy" yaml:"creative_energy"`
}

// Validate checks the invariants a record must hold before it is accepted
// from the metadata document.
func (r *SessionRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("missing session id")
	}
	if !r.Methodology.Valid() {
		return fmt.Errorf("invalid methodology: %q", r.Methodology)
	}
	if r.LogFile == "" {
		return fmt.Errorf("missing log file path")
	}
	if r.Duration != nil && *r.Duration < 0 {
		return fmt.Errorf("negative duration: %f", *r.Duration)
	}
	if r.CreativeEnergy != nil && (*r.CreativeEnergy < 1 || *r.CreativeEnergy > 3) {
		return fmt.Errorf("creative energy out of range: %d", *r.CreativeEnergy)
	}
	return nil
}

// DurationMinutes returns the session duration in minutes, or 0 if the
// session has not ended.
func (r *SessionRecord) DurationMinutes() float64 {
	if r.Duration == nil {
		return 0
	}
	return *r.Duration / 60
}

// EnergyGlyphs renders the creative energy rating as battery glyphs.
func (r *SessionRecord) EnergyGlyphs() string {
	if r.CreativeEnergy == nil {
		return ""
	}
	return strings.Repeat("🔋", *r.CreativeEnergy)
}

// StartTime parses the session start timestamp.
func (r *SessionRecord) StartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Timestamp)
}

// SessionsMetadata is the single JSON document holding all session records,
// ordered by append.
type SessionsMetadata struct {
	Sessions []*SessionRecord `json:"sessions" yaml:"sessions"`
}

// NewSessionsMetadata returns an empty metadata document.
func NewSessionsMetadata() *SessionsMetadata {
	return &SessionsMetadata{Sessions: make([]*SessionRecord, 0)}
}

// Add appends a record to the document.
func (m *SessionsMetadata) Add(record *SessionRecord) {
	m.Sessions = append(m.Sessions, record)
}

// Find returns the record with the given id, or nil.
func (m *SessionsMetadata) Find(id string) *SessionRecord {
	for _, s := range m.Sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}
