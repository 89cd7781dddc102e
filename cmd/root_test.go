package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs lsh with args. Flags keep their values between runs so
// the defaults are given first and args override them.
func executeCommand(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	argv := []string{"--data-dir=" + dir, "--color=never", "--event-log="}
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		argv = append(argv, "--record=")
	}

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(argv, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRunsShell(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "help\nexit\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "> LSH\n"), out)
	assert.Contains(t, out, "  cd\n  help\n  exit\n")
	assert.True(t, strings.HasSuffix(out, "> "), out)
}

func TestRootEndOfInput(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "> ", out)
}

func TestRootInvalidColor(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "exit\n", "--color=sometimes")
	assert.Error(t, err)
}

func TestEventsReport(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "help\nnot_a_real_program_xyz\nexit\n", "--event-log=events.log")
	require.NoError(t, err)

	out, err := executeCommand(t, dir, "", "events", "report", "--event-log=events.log")
	require.NoError(t, err)

	assert.Contains(t, out, "log_entries: 5")
	assert.Contains(t, out, "command: not_a_real_program_xyz")
	assert.Contains(t, out, "help: 1")
}

func TestEventsReport_noLog(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "", "events", "report")
	assert.Error(t, err)
}

func TestBuiltinsCommand(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "builtins")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "cd DIR"))
	assert.True(t, strings.HasPrefix(lines[1], "help"))
	assert.True(t, strings.HasPrefix(lines[2], "exit"))
}

func TestConfigCommand(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "config")
	require.NoError(t, err)

	assert.Contains(t, out, "program_name: lsh")
	assert.Contains(t, out, "color: never")
}

func TestRecordingAndLogsCat(t *testing.T) {
	dir := t.TempDir()

	session, err := executeCommand(t, dir, "help\ncd\nexit\n", "--record=session.cast")
	require.NoError(t, err)

	replayed, err := executeCommand(t, dir, "", "logs", "cat", filepath.Join(dir, "session.cast"))
	require.NoError(t, err)
	assert.Equal(t, session, replayed)
}
