// Package shell holds the pieces of the read-parse-execute loop that don't
// depend on any particular command: line reading, tokenizing and the status
// commands hand back to the loop.
package shell

// Status is returned by every executed command and tells the loop whether to
// read another line.
type Status int

const (
	// Terminate stops the loop after the current iteration.
	Terminate Status = 0
	// Continue prompts for another line.
	Continue Status = 1
)

func (s Status) String() string {
	switch s {
	case Terminate:
		return "terminate"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}
