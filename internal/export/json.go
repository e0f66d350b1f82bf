package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/claude-logger/internal"
)

// JSONExporter exports session records as pretty-printed JSON
type JSONExporter struct{}

// Export writes the session records as a JSON document
func (e *JSONExporter) Export(meta *internal.SessionsMetadata, w io.Writer) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
