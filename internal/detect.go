package internal

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// MarkerFileRelPath is the project-local file whose first line declares the
// methodology in use.
var MarkerFileRelPath = filepath.Join(".claude", "CLAUDE.md")

// DetectMethodology classifies a project directory by the first line of its
// marker file. Only the first line is consulted; the check is case-sensitive.
// A missing or unreadable marker file yields MethodologyUnknown.
func DetectMethodology(projectDir string) Methodology {
	markerPath := filepath.Join(projectDir, MarkerFileRelPath)

	f, err := os.Open(markerPath)
	if err != nil {
		return MethodologyUnknown
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return MethodologyUnknown
	}
	firstLine := scanner.Text()

	switch {
	case strings.Contains(firstLine, "Context-Driven"):
		return MethodologyContextDriven
	case strings.Contains(firstLine, "Spec-Driven"):
		return MethodologyCommandBased
	default:
		return MethodologyUnknown
	}
}
