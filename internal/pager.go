package internal

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Pager displays a file interactively.
type Pager interface {
	Page(path string) error
}

// LessPager pages a file through less(1), falling back to printing the file
// directly when no pager is available.
type LessPager struct{}

func (LessPager) Page(path string) error {
	if _, err := exec.LookPath("less"); err != nil {
		return dumpFile(path, os.Stdout)
	}

	cmd := exec.Command("less", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}

func dumpFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to print transcript: %w", err)
	}
	return nil
}
