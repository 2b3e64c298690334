package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	n, err := con.Write([]byte("abc"))
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal("abc", out.String())
	assert.NoError(con.Flush())
}

func TestBuffered(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	buf := NewBuffered(out)

	_, err := buf.Write([]byte("abc"))
	assert.NoError(err)
	assert.Equal("", out.String())

	assert.NoError(buf.Flush())
	assert.Equal("abc", out.String())
}

func TestNewSink(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "out.txt")
	file, err := os.Create(path)
	if !assert.NoError(err) {
		return
	}
	defer file.Close()

	sink := NewSink(file)
	_, ok := sink.(*Buffered)
	assert.True(ok)

	_, err = sink.Write([]byte("42"))
	assert.NoError(err)
	assert.NoError(sink.Flush())

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("42", string(data))
}
