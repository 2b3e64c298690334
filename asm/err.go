package asm

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrTokenMissing       = errors.New(f("token missing"))
	ErrSegmentExtra       = errors.New(f("unexpected token after segment directive"))
	ErrSegmentMissing     = errors.New(f("missing .data or .text before statement"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDataMissing        = errors.New(f("data declaration without data"))
	ErrDataExtra          = errors.New(f("data declaration has excessive arguments"))
)

// ErrSyntax reports the source line that failed to resolve.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperandCount is an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err *ErrOperandCount) Error() string {
	return f("%v expects %d operands, found %d", err.Mnemonic, err.Want, err.Got)
}

// ErrOperandRole is an operand that does not fit its expected role.
type ErrOperandRole struct {
	Mnemonic string
	Role     Role
	Token    string
}

func (err *ErrOperandRole) Error() string {
	return f("%v expected %v, found '%v'", err.Mnemonic, err.Role, err.Token)
}

type ErrEncodingInvalid string

func (err ErrEncodingInvalid) Error() string {
	return f("encoding %v unknown", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
