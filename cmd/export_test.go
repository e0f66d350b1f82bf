package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/claude-logger/internal"
)

func seedStore(t *testing.T, dir string) {
	t.Helper()
	store := internal.NewMetadataStore(filepath.Join(dir, internal.MetadataFileName))
	meta := internal.NewSessionsMetadata()
	meta.Add(internal.CreateTestRecord("20250101_120000", internal.MethodologyContextDriven, filepath.Join(dir, "a.log")))
	if err := store.Save(meta); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
}

func TestExportCommand_ToFile(t *testing.T) {
	dir := t.TempDir()
	seedStore(t, dir)
	outPath := filepath.Join(dir, "sessions.json")

	rootCmd.SetArgs([]string{"export", "--logs-dir", dir, "--output", outPath})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { exportOutput = "" }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	var decoded internal.SessionsMetadata
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported file does not parse as JSON: %v", err)
	}
	if len(decoded.Sessions) != 1 {
		t.Errorf("exported %d sessions, want 1", len(decoded.Sessions))
	}
}

func TestExportCommand_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	seedStore(t, dir)

	rootCmd.SetArgs([]string{"export", "--logs-dir", dir, "--format", "csv"})
	rootCmd.SetOut(&bytes.Buffer{})
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	defer func() { exportFormat = "json" }()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("export with unsupported format succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error = %v, want unsupported format", err)
	}
}
