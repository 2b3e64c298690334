// Package io provides the output sinks programs print to.
package io

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Sink is a program output destination. Flush drains anything buffered.
type Sink interface {
	io.Writer
	Flush() error
}

// Console writes straight through to its writer.
type Console struct {
	Output io.Writer
}

var _ Sink = &Console{}

func (con *Console) Write(data []byte) (n int, err error) {
	return con.Output.Write(data)
}

// Flush has nothing to drain.
func (con *Console) Flush() (err error) {
	return
}

// Buffered collects output until flushed.
type Buffered struct {
	*bufio.Writer
}

var _ Sink = &Buffered{}

// NewBuffered creates a buffered sink on output.
func NewBuffered(output io.Writer) *Buffered {
	return &Buffered{Writer: bufio.NewWriter(output)}
}

// NewSink picks the sink for a file: a Console for terminals, so that
// output appears as the program prints it, and Buffered otherwise.
func NewSink(file *os.File) Sink {
	if term.IsTerminal(int(file.Fd())) {
		return &Console{Output: file}
	}

	return NewBuffered(file)
}
