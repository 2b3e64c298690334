package emulator

import (
	"errors"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/lexer"
	"github.com/ezrec/mipsim/store"
	"github.com/ezrec/mipsim/vm"
)

// Process exit codes.
const (
	EXIT_OK      = 0
	EXIT_LOAD    = 1
	EXIT_LEXICAL = 2
	EXIT_SYNTAX  = 3
	EXIT_RUNTIME = 4
)

// ExitCode maps an error to its process exit code.
// Unclassified errors are load failures.
func ExitCode(err error) int {
	var res *store.ErrResource
	var lex *lexer.ErrLexical
	var syn *asm.ErrSyntax
	var run *vm.ErrRuntime

	switch {
	case err == nil:
		return EXIT_OK
	case errors.As(err, &lex):
		return EXIT_LEXICAL
	case errors.As(err, &syn):
		return EXIT_SYNTAX
	case errors.As(err, &run):
		return EXIT_RUNTIME
	case errors.As(err, &res):
		return EXIT_LOAD
	}

	return EXIT_LOAD
}
