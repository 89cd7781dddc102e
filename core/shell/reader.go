package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineBufferSize is the initial size of the line buffer.
const LineBufferSize = 1024

// LineReader reads newline terminated lines from an interactive stream.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, LineBufferSize)}
}

// ReadLine returns the next line without its trailing newline.
//
// If the stream ends part way through a line, the partial line is returned
// with a nil error. io.EOF is only returned once there's nothing left to read,
// in which case the line is empty.
func (lr *LineReader) ReadLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	switch {
	case err == nil:
		return strings.TrimSuffix(line, "\n"), nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	default:
		return "", err
	}
}
