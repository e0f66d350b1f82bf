package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/iksnae/claude-logger/internal"
	"github.com/iksnae/claude-logger/testutil"
)

func sampleMetadata(t *testing.T) *internal.SessionsMetadata {
	t.Helper()
	meta := internal.NewSessionsMetadata()
	record := internal.CreateTestRecord("20250101_120000", internal.MethodologyContextDriven, "/tmp/ctx.log")
	record.Project = "myproj"
	three := 3
	record.CreativeEnergy = &three
	meta.Add(record)
	meta.Add(internal.CreateTestRecord("20250102_120000", internal.MethodologyCommandBased, "/tmp/cmd.log"))
	return meta
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format    string
		extension string
		wantErr   bool
	}{
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewExporter(%q) succeeded, want error", tt.format)
				}
				if !strings.Contains(err.Error(), "unsupported format") {
					t.Errorf("error = %v, want unsupported format", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error: %v", tt.format, err)
			}
			if exporter.Extension() != tt.extension {
				t.Errorf("Extension() = %s, want %s", exporter.Extension(), tt.extension)
			}
		})
	}
}

func TestJSONExportRoundTrips(t *testing.T) {
	meta := sampleMetadata(t)

	var out bytes.Buffer
	if err := (&JSONExporter{}).Export(meta, &out); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded internal.SessionsMetadata
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if len(decoded.Sessions) != 2 {
		t.Fatalf("decoded %d sessions, want 2", len(decoded.Sessions))
	}
	if decoded.Sessions[0].ID != "20250101_120000" {
		t.Errorf("first session = %s, want 20250101_120000", decoded.Sessions[0].ID)
	}
	// Pretty-printed, not a single line.
	if !strings.Contains(out.String(), "\n  ") {
		t.Error("export is not indented")
	}
}

func TestYAMLExportRoundTrips(t *testing.T) {
	meta := sampleMetadata(t)

	var out bytes.Buffer
	if err := (&YAMLExporter{}).Export(meta, &out); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded internal.SessionsMetadata
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if len(decoded.Sessions) != 2 {
		t.Fatalf("decoded %d sessions, want 2", len(decoded.Sessions))
	}
	if decoded.Sessions[1].Methodology != internal.MethodologyCommandBased {
		t.Errorf("second session methodology = %s, want command-based", decoded.Sessions[1].Methodology)
	}
}

func TestMarkdownExport(t *testing.T) {
	dir := t.TempDir()
	logFile := testutil.CreateTranscriptFixture(t, dir, "ctx.log", "Human: hi?\n```\ncode\n```\n")

	meta := internal.NewSessionsMetadata()
	record := internal.CreateTestRecord("20250101_120000", internal.MethodologyContextDriven, logFile)
	record.Project = "myproj"
	meta.Add(record)
	// Second session's transcript is gone: no metrics table for it.
	meta.Add(internal.CreateTestRecord("20250102_120000", internal.MethodologyUnknown, filepath.Join(dir, "missing.log")))

	var out bytes.Buffer
	if err := (&MarkdownExporter{}).Export(meta, &out); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	doc := out.String()

	for _, want := range []string{
		"# Claude Sessions",
		"Total sessions: 2",
		"## Session 20250101_120000",
		"**Project:** myproj",
		"**Methodology:** context-driven",
		"## Session 20250102_120000",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("export missing %q:\n%s", want, doc)
		}
	}

	// One metrics table, for the session whose transcript exists.
	if got := strings.Count(doc, "| Exchanges |"); got != 1 {
		t.Errorf("export has %d metrics tables, want 1:\n%s", got, doc)
	}
	// One rule between the two sessions, none trailing. The metrics table's
	// |---| row never ends a line with "---".
	if got := strings.Count(doc, "---\n"); got != 1 {
		t.Errorf("export has %d horizontal rules, want 1", got)
	}
}

func TestMarkdownExportEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := (&MarkdownExporter{}).Export(internal.NewSessionsMetadata(), &out); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.Contains(out.String(), "Total sessions: 0") {
		t.Errorf("empty export missing count:\n%s", out.String())
	}
}
