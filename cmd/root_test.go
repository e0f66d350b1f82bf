package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveLogsDir(t *testing.T) {
	original := logsDir
	defer func() { logsDir = original }()

	t.Run("flag value wins", func(t *testing.T) {
		logsDir = "/tmp/custom-logs"
		dir, err := resolveLogsDir()
		if err != nil {
			t.Fatalf("resolveLogsDir() error: %v", err)
		}
		if dir != "/tmp/custom-logs" {
			t.Errorf("resolveLogsDir() = %s, want /tmp/custom-logs", dir)
		}
	})

	t.Run("defaults to home directory", func(t *testing.T) {
		logsDir = ""
		dir, err := resolveLogsDir()
		if err != nil {
			t.Fatalf("resolveLogsDir() error: %v", err)
		}
		if filepath.Base(dir) != ".claude-logs" {
			t.Errorf("resolveLogsDir() = %s, want a .claude-logs dir under home", dir)
		}
		if !filepath.IsAbs(dir) {
			t.Errorf("resolveLogsDir() = %s, want absolute path", dir)
		}
	})
}

func TestRootHelpMentionsSubcommands(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, sub := range []string{"run", "list", "show", "analyze", "gitlog", "export", "healthcheck"} {
		if !strings.Contains(stdout.String(), sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}
