package logger

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Sessions      SessionReport `json:"session_report"`
	Builtins      StrCounter    `json:"builtin_report"`
	RunCommand    CommandReport `json:"run_command_report"`
	CommandErrors *PathCounter  `json:"command_error_report"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		CommandErrors: NewPathCounter("command", "error"),
	}
}

// Update adds the entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch le.Type {
	case EventSessionStart:
		r.Sessions.Started++
	case EventSessionEnd:
		r.Sessions.Ended++
	case EventRunBuiltin:
		r.Builtins.Increment(le.CommandName())
	case EventRunCommand:
		r.RunCommand.update(le)
	case EventCommandError:
		r.CommandErrors.Increment(le.CommandName(), le.Error)
	default:
		r.InvalidEntries.Increment(string(le.Type))
	}
}

type SessionReport struct {
	Started int `json:"started"`
	Ended   int `json:"ended"`
}

type CommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Exit codes of the commands, -1 for commands killed by a signal.
	ExitCodes StrCounter `json:"exit_codes"`
}

func (r *CommandReport) update(le *LogEntry) {
	r.CommandNames.Increment(le.CommandName())
	r.ExitCodes.Increment(strconv.Itoa(le.ExitCode))
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times the key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of distinct tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns the number of times the tuple was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	var out []Count
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
