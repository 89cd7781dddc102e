package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func fixedClock() time.Time {
	// Go's reference timestmap with a different value in each position.
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestSessionLogger(t *testing.T) {
	var recorded []*LogEntry
	l := &Logger{
		Record: func(le *LogEntry) error {
			recorded = append(recorded, le)
			return nil
		},
		Now: fixedClock,
	}

	a, b := l.NewSession(), l.NewSession()
	assert.NotEqual(t, a.ID(), b.ID())

	require.NoError(t, a.Record(&LogEntry{Type: EventSessionStart}))
	require.NoError(t, b.Record(&LogEntry{Type: EventSessionStart}))

	require.Len(t, recorded, 2)
	assert.Equal(t, a.ID(), recorded[0].SessionID)
	assert.Equal(t, b.ID(), recorded[1].SessionID)
	assert.Equal(t, fixedClock().UnixMicro(), recorded[0].TimestampMicros)
}

func TestJSONLinesLog(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSONLinesLogRecorder(buf)
	l.Now = fixedClock
	session := l.NewSession()

	entries := []*LogEntry{
		{Type: EventSessionStart},
		{Type: EventRunBuiltin, Command: []string{"cd", "/tmp"}, Status: "continue"},
		{Type: EventRunCommand, Command: []string{"false"}, Status: "exit status 1", ExitCode: 1},
		{Type: EventCommandError, Command: []string{"nope"}, Error: "not found"},
		{Type: EventSessionEnd},
	}
	for _, le := range entries {
		require.NoError(t, session.Record(le))
	}

	assert.Equal(t, len(entries), strings.Count(buf.String(), "\n"))

	var read []*LogEntry
	require.NoError(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		read = append(read, le)
	}))
	assert.Equal(t, entries, read)
}

func TestReadJSONLinesLog_malformed(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader(`{"type": 12}`+"\n"+`[1, 2]`), func(*LogEntry) {})
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	assert.NoError(t, NewNopLogger().NewSession().Record(&LogEntry{Type: EventSessionStart}))
}

func TestReport(t *testing.T) {
	report := NewReport()
	for _, le := range []*LogEntry{
		{Type: EventSessionStart},
		{Type: EventRunBuiltin, Command: []string{"help"}},
		{Type: EventRunBuiltin, Command: []string{"help"}},
		{Type: EventRunCommand, Command: []string{"ls", "-l"}, ExitCode: 0},
		{Type: EventRunCommand, Command: []string{"false"}, ExitCode: 1},
		{Type: EventCommandError, Command: []string{"nope"}, Error: "not found"},
		{Type: "mystery"},
		{Type: EventSessionEnd},
	} {
		report.Update(le)
	}

	assert.Equal(t, 8, report.LogEntries)
	assert.Equal(t, SessionReport{Started: 1, Ended: 1}, report.Sessions)
	assert.Equal(t, 2, report.Builtins.Count("help"))
	assert.Equal(t, 1, report.RunCommand.CommandNames.Count("ls"))
	assert.Equal(t, 1, report.RunCommand.ExitCodes.Count("1"))
	assert.Equal(t, 1, report.CommandErrors.Count("nope", "not found"))
	assert.Equal(t, 1, report.InvalidEntries.Count("mystery"))

	out, err := yaml.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "log_entries: 8")
	assert.Contains(t, string(out), "command: nope")
}
