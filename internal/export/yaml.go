package export

import (
	"fmt"
	"io"

	"github.com/iksnae/claude-logger/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports session records as YAML
type YAMLExporter struct{}

// Export writes the session records as a YAML document
func (e *YAMLExporter) Export(meta *internal.SessionsMetadata, w io.Writer) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML export: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
