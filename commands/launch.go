package commands

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Launcher runs external programs and waits for them to finish.
type Launcher struct {
	// Stdin is handed to the program, nil connects it to the null device.
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer
}

// Launch starts the program argv[0] with the argument vector argv and blocks
// until it exits or is killed by a signal. The name is searched for in PATH
// unless it contains a slash.
//
// An error is only returned if the program couldn't be started or reaped, a
// non-zero exit status is reported through the returned state.
func (l *Launcher) Launch(argv []string) (*os.ProcessState, error) {
	if len(argv) == 0 {
		return nil, errors.New("no program given")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	// Wait never asks to hear about stopped children so it only returns once
	// the program has exited or was killed.
	err := cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return cmd.ProcessState, err
	}

	return cmd.ProcessState, nil
}
