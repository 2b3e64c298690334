package lexer

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrEquateSyntax      = errors.New(f(".equ syntax"))
	ErrEquateDuplicate   = errors.New(f(".equ duplicated"))
	ErrQuoteUnterminated = errors.New(f("unterminated string"))
	ErrParenUnterminated = errors.New(f("unterminated $( expression"))
	ErrDefineInvalid     = errors.New(f("define must be NAME=VALUE"))
)

// ErrLexical reports the source line that could not be tokenized.
type ErrLexical struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLexical) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLexical) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
