package export

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/claude-logger/internal"
)

// MarkdownExporter exports session records in Markdown format
type MarkdownExporter struct{}

// Export writes one Markdown section per session, with computed transcript
// metrics where the transcript file is still present on disk.
func (e *MarkdownExporter) Export(meta *internal.SessionsMetadata, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Claude Sessions\n\n")
	_, _ = fmt.Fprintf(w, "Total sessions: %d\n\n", len(meta.Sessions))

	for i, session := range meta.Sessions {
		_, _ = fmt.Fprintf(w, "## Session %s\n\n", session.ID)
		_, _ = fmt.Fprintf(w, "**Project:** %s  \n", session.Project)
		_, _ = fmt.Fprintf(w, "**Methodology:** %s  \n", session.Methodology)
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", session.Timestamp)
		if session.Duration != nil {
			_, _ = fmt.Fprintf(w, "**Duration:** %.1f minutes  \n", session.DurationMinutes())
		}
		if session.CreativeEnergy != nil {
			_, _ = fmt.Fprintf(w, "**Energy:** %s (%d/3)  \n", session.EnergyGlyphs(), *session.CreativeEnergy)
		}
		_, _ = fmt.Fprintf(w, "**Command:** `%s`  \n", session.Command)
		_, _ = fmt.Fprintf(w, "**Transcript:** %s\n\n", session.LogFile)

		if _, err := os.Stat(session.LogFile); err == nil {
			if metrics, err := internal.AnalyzeLogFile(session.LogFile); err == nil {
				_, _ = fmt.Fprintf(w, "| Exchanges | Code Blocks | Questions | Enthusiasm | Confusion | Compaction |\n")
				_, _ = fmt.Fprintf(w, "|---|---|---|---|---|---|\n")
				_, _ = fmt.Fprintf(w, "| %d | %d | %d | %d | %d | %d |\n\n",
					metrics.Exchanges, metrics.CodeBlocks, metrics.QuestionsAsked,
					metrics.EnthusiasmMarkers, metrics.ConfusionMarkers, metrics.CompactionIndicators)
			}
		}

		if i < len(meta.Sessions)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
