package commands

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutUnixTools(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX sh and coreutils")
	}
}

func TestLauncher(t *testing.T) {
	skipWithoutUnixTools(t)

	cases := map[string]struct {
		argv       []string
		exitCode   int
		wantStdout string
		wantState  string
	}{
		"true":        {argv: []string{"true"}, exitCode: 0},
		"false":       {argv: []string{"false"}, exitCode: 1},
		"exit-status": {argv: []string{"sh", "-c", "exit 3"}, exitCode: 3},
		"args":        {argv: []string{"echo", "hello", "world"}, wantStdout: "hello world\n"},
		"argv-zero":   {argv: []string{"sh", "-c", `echo "$0"`, "zero"}, wantStdout: "zero\n"},
		"abs-path":    {argv: []string{"/bin/sh", "-c", "echo ok"}, wantStdout: "ok\n"},
		"null-stdin":  {argv: []string{"cat"}, exitCode: 0},
		"signaled":    {argv: []string{"sh", "-c", "kill -9 $$"}, exitCode: -1, wantState: "killed"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			l := &Launcher{Stdout: stdout, Stderr: stderr}

			state, err := l.Launch(tc.argv)
			require.NoError(t, err)
			require.NotNil(t, state)

			assert.True(t, state.Exited() || tc.exitCode == -1)
			assert.Equal(t, tc.exitCode, state.ExitCode())
			assert.Equal(t, tc.wantStdout, stdout.String())
			assert.Contains(t, state.String(), tc.wantState)
		})
	}
}

func TestLauncher_notFound(t *testing.T) {
	l := &Launcher{}

	state, err := l.Launch([]string{"not_a_real_program_xyz"})
	assert.Nil(t, state)
	assert.True(t, errors.Is(err, exec.ErrNotFound), "got %v", err)
}

func TestLauncher_notExecutable(t *testing.T) {
	skipWithoutUnixTools(t)
	l := &Launcher{}

	_, err := l.Launch([]string{t.TempDir()})
	assert.Error(t, err)
}

func TestLauncher_empty(t *testing.T) {
	_, err := (&Launcher{}).Launch(nil)
	assert.Error(t, err)
}
