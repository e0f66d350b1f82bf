package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logsDir string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "claude-logger",
	Short: "Run Claude CLI sessions with full transcript logging",
	Long: `A CLI wrapper around the Claude coding assistant that transcribes every
interactive session to a log file, records structured session metadata,
commits each transcript to a git history, and analyzes the accumulated
logs to compare work methodologies.

Features:
  • Full terminal capture of every session via script(1)
  • Per-session metadata (project, methodology, duration, energy)
  • Git-backed history of transcripts
  • Methodology comparison from lexical transcript metrics
  • Export session records as JSON, YAML or Markdown

Quick Start:
  claude-logger run                      # Start a logged session
  claude-logger run -e -- --resume       # Track energy, pass args to claude
  claude-logger list                     # List logged sessions
  claude-logger analyze                  # Compare methodologies

For detailed usage, see: https://github.com/iksnae/claude-logger`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveLogsDir returns the log directory: the --logs-dir flag if given,
// otherwise ~/.claude-logs. Core constructors take this value explicitly;
// this is the only place the environment is consulted.
func resolveLogsDir() (string, error) {
	if logsDir != "" {
		return logsDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude-logs"), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logsDir, "logs-dir", "", "Custom log directory (default ~/.claude-logs)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
