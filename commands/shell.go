package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/logger"
	"github.com/josephlewis42/lsh/core/shell"
	"github.com/josephlewis42/lsh/core/vio"
)

// Shell reads commands one line at a time and runs them, either as a builtin
// or by launching an external program and waiting for it.
type Shell struct {
	Files  vio.VIO
	Prompt string
	// Name prefixes diagnostics.
	Name   string
	Color  *ColorPrinter
	Events *logger.SessionLogger
	// Log gets problems with the shell itself e.g. events that couldn't be
	// recorded.
	Log *log.Logger

	launcher *Launcher
	reader   *shell.LineReader
}

// NewShell creates a shell talking over files. Events may be nil.
func NewShell(files vio.VIO, cfg *config.Configuration, events *logger.SessionLogger) *Shell {
	s := &Shell{
		Files:  files,
		Prompt: cfg.Prompt,
		Name:   cfg.ProgramName,
		Color:  NewColorPrinter(cfg.Color),
		Events: events,
		Log:    log.New(files.Stderr(), fmt.Sprintf("[%s] ", cfg.ProgramName), 0),
		reader: shell.NewLineReader(files.Stdin()),
	}

	s.launcher = &Launcher{
		Stdout: files.Stdout(),
		Stderr: files.Stderr(),
	}
	// Only share stdin with programs if it's a real file, otherwise they'd
	// compete with the shell for buffered input.
	if fd, ok := vio.File(files.Stdin()); ok {
		s.launcher.Stdin = fd
	}

	return s
}

// SetProgramStdin overrides the standard input handed to external programs.
func (s *Shell) SetProgramStdin(fd *os.File) {
	s.launcher.Stdin = fd
}

// Run prompts for and executes commands until exit is run or the input ends.
func (s *Shell) Run() error {
	s.record(&logger.LogEntry{Type: logger.EventSessionStart})
	defer s.record(&logger.LogEntry{Type: logger.EventSessionEnd})

	for {
		fmt.Fprint(s.Files.Stdout(), s.Prompt)

		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if s.Execute(shell.Split(line)) == shell.Terminate {
			return nil
		}
	}
}

// Execute runs a single tokenized command line. args[0] names a builtin or
// an external program, an empty command line does nothing.
func (s *Shell) Execute(args []string) shell.Status {
	if len(args) == 0 {
		return shell.Continue
	}

	if builtin, ok := LookupBuiltin(args[0]); ok {
		status := builtin.Main(s, args)
		s.record(&logger.LogEntry{
			Type:    logger.EventRunBuiltin,
			Command: args,
			Status:  status.String(),
		})
		return status
	}

	return s.launch(args)
}

func (s *Shell) launch(args []string) shell.Status {
	state, err := s.launcher.Launch(args)
	if err != nil {
		s.Errorf("%v", err)
		s.record(&logger.LogEntry{
			Type:    logger.EventCommandError,
			Command: args,
			Error:   err.Error(),
		})
		return shell.Continue
	}

	s.record(&logger.LogEntry{
		Type:     logger.EventRunCommand,
		Command:  args,
		Status:   state.String(),
		ExitCode: state.ExitCode(),
	})
	return shell.Continue
}

// Errorf writes a diagnostic prefixed with the shell's name to stderr.
func (s *Shell) Errorf(format string, a ...interface{}) {
	w := s.Files.Stderr()
	prefix := s.Color.Sprint(w, ColorBoldRed, s.Name+":")
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

func (s *Shell) record(le *logger.LogEntry) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(le); err != nil {
		s.Log.Printf("couldn't record event: %v", err)
	}
}
