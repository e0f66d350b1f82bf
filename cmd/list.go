package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var listMethodology string

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	methodologyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Italic(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged sessions",
	Long:  `List all logged Claude sessions with their metadata.`,
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

		sessions := meta.Sessions
		if listMethodology != "" {
			filtered := make([]*internal.SessionRecord, 0, len(sessions))
			for _, s := range sessions {
				if string(s.Methodology) == listMethodology {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		displaySessions(sessions)
		return nil
	},
}

func displaySessions(sessions []*internal.SessionRecord) {
	if len(sessions) == 0 {
		fmt.Println(headerStyle.Render("📋 No sessions found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d session(s)", len(sessions)))
	fmt.Println(header)
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Project")+"\t"+titleStyle.Render("Methodology")+"\t"+titleStyle.Render("Duration")+"\t"+titleStyle.Render("Energy")+"\t"+titleStyle.Render("Started")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 110))

	for _, session := range sessions {
		id := idStyle.Render(session.ID)
		project := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render(session.Project)
		methodology := methodologyStyle.Render(string(session.Methodology))

		duration := dateStyle.Render("—")
		if session.Duration != nil {
			duration = durationStyle.Render(fmt.Sprintf("%.1fmin", session.DurationMinutes()))
		}

		energy := dateStyle.Render("—")
		if session.CreativeEnergy != nil {
			energy = session.EnergyGlyphs()
		}

		started := dateStyle.Render(session.Timestamp)
		if t, err := session.StartTime(); err == nil {
			started = dateStyle.Render(formatRelativeDate(t))
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", id, project, methodology, duration, energy, started)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the session ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(sessions[0].ID) +
		idStyle.Render(") with `claude-logger show <id>`"))
}

func formatRelativeDate(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listMethodology, "methodology", "", "Only show sessions with this methodology")
}
