package vm

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrEntryPoint            = errors.New(f("main entry point missing"))
	ErrPcRange               = errors.New(f("program counter out of range"))
	ErrActionInvalid         = errors.New(f("action invalid"))
	ErrRegisterInvalid       = errors.New(f("register invalid"))
	ErrRegisterUninitialized = errors.New(f("register uninitialized"))
	ErrRegisterZero          = errors.New(f("$zero is read-only"))
	ErrValueNotNumeric       = errors.New(f("value is not an integer"))
	ErrValueNotString        = errors.New(f("value is not a string"))
	ErrMemoryReadOnly        = errors.New(f("memory is read-only"))
	ErrDivideByZero          = errors.New(f("divide by zero"))
	ErrSyscallInvalid        = errors.New(f("syscall invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrRegister names the register an error occurred on.
type ErrRegister struct {
	Name string
	Err  error
}

func (err *ErrRegister) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrRegister) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}
