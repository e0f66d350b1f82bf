package cmd

import (
	"fmt"

	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var gitlogCount int

var gitlogCmd = &cobra.Command{
	Use:   "gitlog",
	Short: "Show the git history of logged sessions",
	Long:  `Show the most recent session commits from the log directory's git history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveLogsDir()
		if err != nil {
			return err
		}

		git := internal.NewGitRecorder(dir)
		out, err := git.Log(gitlogCount)
		if err != nil {
			return err
		}

		fmt.Println("\n=== Git History of Claude Sessions ===")
		fmt.Println()
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gitlogCmd)
	gitlogCmd.Flags().IntVarP(&gitlogCount, "count", "n", 20, "Number of commits to show")
}
