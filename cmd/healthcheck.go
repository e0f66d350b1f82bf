package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude-logger/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if claude-logger can record and analyze sessions",
	Long: `Check the health of claude-logger by verifying:
  • Required external tools (script, git, less, claude)
  • Log directory accessibility
  • Metadata document integrity
  • Session count

This command is useful for debugging environment issues before starting a session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Claude Logger Health Check"))
		fmt.Println()

		// Step 1: external tools
		fmt.Println(infoStyle.Render("Step 1: Checking external tools..."))
		toolsOK := true
		for _, tool := range []string{"script", "git"} {
			if path, err := exec.LookPath(tool); err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %s not found in PATH", tool)))
				toolsOK = false
			} else {
				fmt.Println(successStyle.Render(fmt.Sprintf("✅ %s available", tool)))
				if healthcheckVerbose {
					fmt.Printf("   %s\n", path)
				}
			}
		}
		for _, tool := range []string{"less", "claude"} {
			if path, err := exec.LookPath(tool); err != nil {
				fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  %s not found in PATH", tool)))
			} else {
				fmt.Println(successStyle.Render(fmt.Sprintf("✅ %s available", tool)))
				if healthcheckVerbose {
					fmt.Printf("   %s\n", path)
				}
			}
		}
		fmt.Println()

		// Step 2: log directory
		fmt.Println(infoStyle.Render("Step 2: Checking log directory..."))
		dir, err := resolveLogsDir()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to resolve log directory:"), err)
			os.Exit(1)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Println(errorStyle.Render("❌ Log directory not creatable:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Log directory writable"))
		if healthcheckVerbose {
			fmt.Printf("   %s\n", dir)
		}

		gitDir := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitDir); err == nil {
			fmt.Println(successStyle.Render("✅ Git repository initialized"))
		} else {
			fmt.Println(warningStyle.Render("⚠️  Git repository not initialized yet (created on first session)"))
		}
		fmt.Println()

		// Step 3: metadata document
		fmt.Println(infoStyle.Render("Step 3: Checking metadata document..."))
		store := internal.NewMetadataStore(filepath.Join(dir, internal.MetadataFileName))
		meta, err := store.Load()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Metadata document unreadable:"), err)
			os.Exit(1)
		}

		sessionCount := len(meta.Sessions)
		if sessionCount > 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Found %d session(s)", sessionCount)))
			missing := 0
			for _, session := range meta.Sessions {
				if _, err := os.Stat(session.LogFile); err != nil {
					missing++
				}
			}
			if missing > 0 {
				fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  %d session(s) have a missing transcript file", missing)))
			}
		} else {
			fmt.Println(warningStyle.Render("⚠️  No sessions recorded yet"))
		}
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()
		if toolsOK {
			fmt.Println(successStyle.Render("✅ Health check passed!"))
			fmt.Println(successStyle.Render(fmt.Sprintf("   • Sessions: %d recorded", sessionCount)))
			return nil
		}
		fmt.Println(errorStyle.Render("❌ Health check failed"))
		fmt.Println("   • Required tools are missing; sessions cannot be captured")
		return fmt.Errorf("health check failed: required tools missing")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed diagnostic information")
}
