package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var trackEnergy bool

var runCmd = &cobra.Command{
	Use:   "run [-- claude arguments]",
	Short: "Run a logged Claude session",
	Long: `Start the Claude assistant in the current directory with full transcript
logging. Everything after -- is passed to claude unchanged.

The session transcript, its metadata record and a git commit are written to
the log directory when the session ends, however it ends. The process exits
with the wrapped assistant's own exit status (130 on interrupt).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveLogsDir()
		if err != nil {
			return err
		}

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		recorder, err := internal.NewSessionRecorder(dir)
		if err != nil {
			return err
		}

		result, err := recorder.Run(workDir, args, trackEnergy)
		if err != nil {
			if result == nil {
				return err
			}
			// Session ran but part of the bookkeeping failed; report it and
			// still preserve the wrapped process's exit status.
			internal.LogError("Session bookkeeping incomplete: %v", err)
		}

		if result.ExitCode != 0 {
			os.Exit(result.ExitCode)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&trackEnergy, "track-energy", "e", false, "Prompt for creative energy level after session")
}
