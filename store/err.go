package store

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrProgramInvalid = errors.New(f("persisted program invalid"))
	ErrFormatInvalid  = errors.New(f("format invalid"))
)

// ErrResource reports a file that could not be read or written.
type ErrResource struct {
	Op   string
	Path string
	Err  error
}

func (err *ErrResource) Error() string {
	return f("%v %v: %v", err.Op, err.Path, err.Err)
}

func (err *ErrResource) Unwrap() error {
	return err.Err
}

// Summary is the error without the underlying cause.
func (err *ErrResource) Summary() string {
	return f("cannot %v %v", err.Op, err.Path)
}
