package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/claude-logger/internal"
	"github.com/iksnae/claude-logger/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session records",
	Long: `Export all session records in the chosen format.

Supported formats: json, yaml, md. The Markdown format also includes the
computed transcript metrics for sessions whose log file still exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveLogsDir()
		if err != nil {
			return err
		}

		store := internal.NewMetadataStore(filepath.Join(dir, internal.MetadataFileName))
		meta, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load session metadata: %w", err)
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := exporter.Export(meta, out); err != nil {
			return err
		}

		if exportOutput != "" {
			internal.LogInfo("Exported %d session(s) to %s", len(meta.Sessions), exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
