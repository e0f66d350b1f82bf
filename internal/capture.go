package internal

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// ExitCodeInterrupted is reported when the wrapped process was ended by a
// user interrupt, matching shell convention (128 + SIGINT).
const ExitCodeInterrupted = 130

// ExecOutcome is the tagged result of the delegated assistant run: either a
// normal exit with a code, or an interrupt.
type ExecOutcome struct {
	Code        int
	Interrupted bool
}

// Capturer launches the assistant command under a transcript-capturing
// utility that mirrors all interactive I/O into logFile. It never returns
// early on interrupt; cleanup decisions belong to the caller.
type Capturer interface {
	Capture(logFile string, command string) (ExecOutcome, error)
}

// ScriptCapturer delegates to script(1), which attaches a pseudo-terminal
// and appends everything the user and the assistant exchange to the log.
type ScriptCapturer struct{}

// Capture runs `script -q -a <logFile> -c <command>` with the terminal
// attached. A Ctrl-C lands in the foreground process group, so the wrapped
// process receives it directly; the interrupt is absorbed here and mapped
// to ExitCodeInterrupted instead of propagating up the stack.
func (ScriptCapturer) Capture(logFile string, command string) (ExecOutcome, error) {
	cmd := exec.Command("script", "-q", "-a", logFile, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	err := cmd.Run()

	interrupted := false
	select {
	case <-interrupts:
		interrupted = true
	default:
	}

	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			// script itself could not be started
			return ExecOutcome{Code: 1}, err
		}
		code = exitErr.ExitCode()
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() && status.Signal() == syscall.SIGINT {
				interrupted = true
			}
		}
	}

	if interrupted {
		code = ExitCodeInterrupted
	}

	return ExecOutcome{Code: code, Interrupted: interrupted}, nil
}
