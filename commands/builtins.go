package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/josephlewis42/lsh/core/shell"
)

// BuiltinFunc runs a builtin. args holds the whole command line, the name of
// the builtin is args[0].
type BuiltinFunc func(s *Shell, args []string) shell.Status

// Builtin is a command that runs inside the shell process.
type Builtin struct {
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the builtin.
	Short string
	Main  BuiltinFunc
}

// builtins holds the registered builtins in lookup order. It's filled once by
// init and never modified afterwards.
var builtins []Builtin

// BuiltinCount returns the number of registered builtins.
func BuiltinCount() int {
	return len(builtins)
}

// BuiltinAt returns the i-th registered builtin.
func BuiltinAt(i int) Builtin {
	return builtins[i]
}

// LookupBuiltin finds the first builtin registered under name.
func LookupBuiltin(name string) (Builtin, bool) {
	for i := 0; i < BuiltinCount(); i++ {
		if b := BuiltinAt(i); b.Name == name {
			return b, true
		}
	}
	return Builtin{}, false
}

// ListBuiltins returns a copy of the registered builtins in order.
func ListBuiltins() []Builtin {
	return append([]Builtin(nil), builtins...)
}

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) shell.Status {
	if len(args) < 2 {
		s.Errorf("expected argument to %q", args[0])
		return shell.Continue
	}

	if err := os.Chdir(args[1]); err != nil {
		s.Errorf("%s: %s", args[0], describeError(err))
	}
	return shell.Continue
}

// Help lists the builtins.
func Help(s *Shell, args []string) shell.Status {
	w := s.Files.Stdout()
	fmt.Fprintln(w, "LSH")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	for i := 0; i < BuiltinCount(); i++ {
		fmt.Fprintf(w, "  %s\n", s.Color.Sprint(w, ColorBold, BuiltinAt(i).Name))
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return shell.Continue
}

// Exit quits the shell.
func Exit(s *Shell, args []string) shell.Status {
	return shell.Terminate
}

// describeError drops the operation name from path errors so they read like
// "path: no such file or directory".
func describeError(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("%s: %v", pathErr.Path, pathErr.Err)
	}
	return err.Error()
}

func init() {
	builtins = []Builtin{
		{Name: "cd", Use: "cd DIR", Short: "Change the working directory.", Main: Cd},
		{Name: "help", Use: "help", Short: "Show the builtin commands.", Main: Help},
		{Name: "exit", Use: "exit", Short: "Exit the shell.", Main: Exit},
	}
}
