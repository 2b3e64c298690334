// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lexer splits assembly source into statements.
//
// A '#' starts a comment outside of double quotes. Commas, spaces and tabs
// separate tokens. A double quoted string is a single token with its quotes
// removed; a backslash escaped quote does not end it.
//
// The lexer also expands equates, defined with '.equ NAME VALUE' or by the
// caller, and compile time '$(expr)' integer expressions.
package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mipsim/asm"
)

// Lexer tokenizes assembly source.
type Lexer struct {
	Verbose bool              // If set, logs each tokenized line.
	Equate  map[string]string // Map of equates, rebuilt by each Tokenize.

	predefine map[string]string
}

// Predefine defines an equate that is present before the first line.
func (lex *Lexer) Predefine(name string, value string) {
	if lex.predefine == nil {
		lex.predefine = map[string]string{}
	}
	lex.predefine[name] = value
}

// PredefineString defines an equate from a 'NAME=VALUE' string.
func (lex *Lexer) PredefineString(define string) (err error) {
	name, value, ok := strings.Cut(define, "=")
	name = strings.TrimSpace(name)
	if !ok || len(name) == 0 || strings.ContainsAny(name, " \t\"#,") {
		err = ErrDefineInvalid
		return
	}
	lex.Predefine(name, strings.TrimSpace(value))
	return
}

// Tokenize tokenizes a source with a default Lexer.
func Tokenize(input io.Reader) (statements []asm.Statement, err error) {
	lex := &Lexer{}
	return lex.Tokenize(input)
}

// Tokenize reads all of input, returning one statement per non-empty line.
func (lex *Lexer) Tokenize(input io.Reader) (statements []asm.Statement, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			statements = nil
			err = &ErrLexical{LineNo: lineno, Line: line, Err: err}
		}
	}()

	lex.Equate = map[string]string{"LINENO": "0"}
	maps.Copy(lex.Equate, lex.predefine)

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		var tokens []string
		tokens, err = lex.tokenizeLine(line, lineno)
		if err != nil {
			return
		}

		if len(tokens) == 0 {
			continue
		}

		if lex.Verbose {
			log.Printf("%v: %q", lineno, tokens)
		}

		statements = append(statements, asm.Statement{LineNo: lineno, Tokens: tokens})
	}

	err = scanner.Err()

	return
}

// token is a token and whether it was quoted.
type token struct {
	text   string
	quoted bool
}

// tokenizeLine tokenizes a single line, applying equates and directives.
func (lex *Lexer) tokenizeLine(line string, lineno int) (tokens []string, err error) {
	lex.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	words, err := lex.split(line)
	if err != nil {
		return
	}

	if len(words) == 0 {
		return
	}

	// .equ NAME VALUE
	if !words[0].quoted && words[0].text == ".equ" {
		if len(words) != 3 || words[1].quoted {
			err = ErrEquateSyntax
			return
		}
		_, ok := lex.Equate[words[1].text]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		lex.Equate[words[1].text] = words[2].text
		return
	}

	tokens = make([]string, len(words))
	for n, word := range words {
		tokens[n] = word.text
		if word.quoted {
			continue
		}
		equate, ok := lex.Equate[word.text]
		if ok {
			tokens[n] = equate
		}
	}

	return
}

// split scans a line into tokens, evaluating $() expressions as it goes.
func (lex *Lexer) split(line string) (words []token, err error) {
	var current strings.Builder
	var pending bool

	flush := func() {
		if pending {
			words = append(words, token{text: current.String()})
		}
		current.Reset()
		pending = false
	}

	for n := 0; n < len(line); n++ {
		ch := line[n]
		switch {
		case ch == '#':
			flush()
			return
		case ch == ' ' || ch == '\t' || ch == ',' || ch == '\r':
			flush()
		case ch == '"':
			flush()
			var text string
			text, n, err = quoted(line, n+1)
			if err != nil {
				return
			}
			words = append(words, token{text: text, quoted: true})
		case ch == '$' && n+1 < len(line) && line[n+1] == '(':
			var expr string
			expr, n, err = parenthesized(line, n+2)
			if err != nil {
				return
			}
			var value int64
			value, err = lex.parenEval(expr)
			if err != nil {
				return
			}
			current.WriteString(fmt.Sprintf("%d", value))
			pending = true
		default:
			current.WriteByte(ch)
			pending = true
		}
	}

	flush()
	return
}

// quoted returns the text up to the closing quote, and the index of that quote.
func quoted(line string, start int) (text string, end int, err error) {
	for end = start; end < len(line); end++ {
		switch line[end] {
		case '\\':
			if end+1 < len(line) && line[end+1] == '"' {
				end++
			}
		case '"':
			text = line[start:end]
			return
		}
	}

	err = ErrQuoteUnterminated
	return
}

// parenthesized returns the text up to the matching ')', and its index.
func parenthesized(line string, start int) (expr string, end int, err error) {
	depth := 1
	for end = start; end < len(line); end++ {
		switch line[end] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				expr = line[start:end]
				return
			}
		}
	}

	err = ErrParenUnterminated
	return
}

// parenEval does compile-time $(...) evaluations.
func (lex *Lexer) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "equate"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range lex.Equate {
		value32, err := asm.ParseInteger(str)
		if err != nil {
			// Non-integer equates may be registers or labels.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
