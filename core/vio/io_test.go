package vio

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNullIO(t *testing.T) {
	null := NewNullIO()

	n, err := null.Stdout().Write([]byte("discarded"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = null.Stdin().Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)
}

func TestNewAdapter(t *testing.T) {
	out := &bytes.Buffer{}
	adapter := NewAdapter(strings.NewReader("in"), out, nil)

	data, err := io.ReadAll(adapter.Stdin())
	assert.NoError(t, err)
	assert.Equal(t, "in", string(data))

	io.WriteString(adapter.Stdout(), "out")
	assert.Equal(t, "out", out.String())
	assert.NoError(t, adapter.Stdout().Close())
}

func TestFile(t *testing.T) {
	fd, ok := File(os.Stdin)
	assert.True(t, ok)
	assert.Equal(t, os.Stdin, fd)

	_, ok = File(&bytes.Buffer{})
	assert.False(t, ok)
}
