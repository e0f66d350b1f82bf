package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var (
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a specific session transcript",
	Long:  `Display a session's metadata and page through its transcript.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		dir, err := resolveLogsDir()
		if err != nil {
			return err
		}

		store := internal.NewMetadataStore(filepath.Join(dir, internal.MetadataFileName))
		meta, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load session metadata: %w", err)
		}

		session := meta.Find(sessionID)
		if session == nil {
			return fmt.Errorf("session not found: %s", sessionID)
		}

		displaySessionHeader(session)

		if _, err := os.Stat(session.LogFile); err != nil {
			return fmt.Errorf("log file not found: %s", session.LogFile)
		}

		var pager internal.Pager = internal.LessPager{}
		return pager.Page(session.LogFile)
	},
}

func displaySessionHeader(session *internal.SessionRecord) {
	fmt.Println(sessionHeaderStyle.Render(fmt.Sprintf("💬 Session %s", session.ID)))

	metaParts := []string{
		fmt.Sprintf("Project: %s", session.Project),
		fmt.Sprintf("Methodology: %s", session.Methodology),
	}
	if session.Duration != nil {
		metaParts = append(metaParts, fmt.Sprintf("Duration: %.1f minutes", session.DurationMinutes()))
	}
	if session.CreativeEnergy != nil {
		metaParts = append(metaParts, fmt.Sprintf("Energy: %s", session.EnergyGlyphs()))
	}

	fmt.Println(sessionMetaStyle.Render(joinParts(metaParts)))
	fmt.Println()
}

func joinParts(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " • "
		}
		out += p
	}
	return out
}

func init() {
	rootCmd.AddCommand(showCmd)
}
