package cmd

import (
	"os"
	"path/filepath"

	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare methodologies across logged sessions",
	Long: `Scan every logged transcript for lexical signal patterns (exchanges,
code blocks, enthusiasm, confusion, backward references), aggregate them by
methodology and print a comparison report.

The metrics are surface-text proxies counted by pattern matching; they make
no claim to measure the underlying conversation semantically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveLogsDir()
		if err != nil {
			return err
		}

		store := internal.NewMetadataStore(filepath.Join(dir, internal.MetadataFileName))
		analyzer := internal.NewAnalyzer(store)
		return analyzer.GenerateReport(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
