package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptEnergy interactively asks for a creative energy rating in {1,2,3},
// re-prompting on invalid input. Any read failure (EOF, interrupt) abandons
// the capture and returns nil; a missing rating never fails the session.
func PromptEnergy(in io.Reader, out io.Writer) *int {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "How would you rate your creative energy after this session?")
	fmt.Fprintln(out, "1 🔋     - Depleted")
	fmt.Fprintln(out, "2 🔋🔋   - Neutral")
	fmt.Fprintln(out, "3 🔋🔋🔋 - Energized")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nEnergy level (1-3): ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nSkipping energy tracking")
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			one := 1
			return &one
		case "2":
			two := 2
			return &two
		case "3":
			three := 3
			return &three
		default:
			fmt.Fprintln(out, "Please enter 1, 2, or 3")
		}
	}
}
