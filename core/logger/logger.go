package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventType identifies the kind of a LogEntry.
type EventType string

const (
	EventSessionStart EventType = "session_start"
	EventSessionEnd   EventType = "session_end"
	EventRunBuiltin   EventType = "run_builtin"
	EventRunCommand   EventType = "run_command"
	EventCommandError EventType = "command_error"
)

// LogEntry is a single event in a session.
type LogEntry struct {
	TimestampMicros int64
	SessionID       string
	Type            EventType

	// Command holds the full argument vector, including the command name.
	Command []string
	// Status is the loop status for builtins or the process state for
	// external commands e.g. "exit status 1" or "signal: killed".
	Status   string
	ExitCode int
	Error    string
}

// CommandName returns the first argument of the command, if any.
func (le *LogEntry) CommandName() string {
	if len(le.Command) == 0 {
		return ""
	}
	return le.Command[0]
}

func (le *LogEntry) toStruct() (*structpb.Struct, error) {
	command := make([]interface{}, len(le.Command))
	for i, arg := range le.Command {
		command[i] = arg
	}

	return structpb.NewStruct(map[string]interface{}{
		"timestamp_micros": le.TimestampMicros,
		"session_id":       le.SessionID,
		"type":             string(le.Type),
		"command":          command,
		"status":           le.Status,
		"exit_code":        le.ExitCode,
		"error":            le.Error,
	})
}

func fromStruct(s *structpb.Struct) *LogEntry {
	fields := s.GetFields()
	le := &LogEntry{
		TimestampMicros: int64(fields["timestamp_micros"].GetNumberValue()),
		SessionID:       fields["session_id"].GetStringValue(),
		Type:            EventType(fields["type"].GetStringValue()),
		Status:          fields["status"].GetStringValue(),
		ExitCode:        int(fields["exit_code"].GetNumberValue()),
		Error:           fields["error"].GetStringValue(),
	}

	for _, arg := range fields["command"].GetListValue().GetValues() {
		le.Command = append(le.Command, arg.GetStringValue())
	}

	return le
}

// MarshalJSON implements json.Marshaler.
func (le *LogEntry) MarshalJSON() ([]byte, error) {
	s, err := le.toStruct()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (le *LogEntry) UnmarshalJSON(data []byte) error {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return err
	}
	*le = *fromStruct(&s)
	return nil
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var logEntry LogEntry
		if err := logEntry.UnmarshalJSON(rawEntry); err != nil {
			return fmt.Errorf("malformed log entry: %w", err)
		}

		handler(&logEntry)
	}
	return nil
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures session events.
type Logger struct {
	Record LogRecorder

	// Now is the time source, it defaults to time.Now.
	Now func() time.Time
}

// NewJSONLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := le.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger creates a Logger that drops every event.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(*LogEntry) error {
			return nil
		},
	}
}

func (l *Logger) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// NewSession creates a logger with a freshly generated session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: uuid.NewString()}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// ID returns the session ID attached to every event.
func (l *SessionLogger) ID() string {
	return l.sessionID
}

// Record stamps the entry with the time and session ID then stores it.
func (l *SessionLogger) Record(le *LogEntry) error {
	le.TimestampMicros = l.logger.now().UnixMicro()
	le.SessionID = l.sessionID

	return l.logger.Record(le)
}
