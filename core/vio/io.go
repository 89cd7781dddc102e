// Package vio bundles the three standard streams a shell session talks
// through so they can be swapped out for recording or testing.
package vio

import (
	"io"
	"os"
)

// VIO provides the standard streams of a session.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// Adapter implements VIO over plain readers and writers.
type Adapter struct {
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

// NewAdapter creates a VIO, nil streams read as closed and discard writes.
func NewAdapter(stdin io.Reader, stdout, stderr io.Writer) *Adapter {
	return &Adapter{
		IStdin:  toReadCloserOrDiscard(stdin),
		IStdout: toWriteCloserOrDiscard(stdout),
		IStderr: toWriteCloserOrDiscard(stderr),
	}
}

// NewOSIO creates a VIO connected to the process's own standard streams.
func NewOSIO() *Adapter {
	return &Adapter{
		IStdin:  os.Stdin,
		IStdout: os.Stdout,
		IStderr: os.Stderr,
	}
}

// NewNullIO creates a valid /dev/null style I/O, reads won't work and
// writes will be discarded.
func NewNullIO() VIO {
	return NewAdapter(nil, nil, nil)
}

var _ VIO = (*Adapter)(nil)

func (a *Adapter) Stdin() io.ReadCloser {
	return a.IStdin
}

func (a *Adapter) Stdout() io.WriteCloser {
	return a.IStdout
}

func (a *Adapter) Stderr() io.WriteCloser {
	return a.IStderr
}

// File returns the *os.File behind a stream, if there is one.
func File(stream interface{}) (*os.File, bool) {
	fd, ok := stream.(*os.File)
	return fd, ok
}

func toWriteCloserOrDiscard(w io.Writer) io.WriteCloser {
	if w == nil {
		return &devNull{}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}

	return nopWriteCloser{w}
}

func toReadCloserOrDiscard(r io.Reader) io.ReadCloser {
	if r == nil {
		return &devNull{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}

	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull implemnets io.Reader and io.Writer, always closing for reads and
// discarding writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (*devNull) Close() error {
	return nil
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}
