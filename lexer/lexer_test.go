package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsim/asm"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"# header comment",
		".data",
		`msg: .asciiz "Hello, World # not a comment\n"`,
		"",
		".text",
		"main:\tli $v0, 4   # print",
		"   la $a0,msg",
		"syscall",
	}

	sts, err := Tokenize(strings.NewReader(strings.Join(source, "\n")))
	if !assert.NoError(err) {
		return
	}

	expected := []asm.Statement{
		{LineNo: 2, Tokens: []string{".data"}},
		{LineNo: 3, Tokens: []string{"msg:", ".asciiz", `Hello, World # not a comment\n`}},
		{LineNo: 5, Tokens: []string{".text"}},
		{LineNo: 6, Tokens: []string{"main:", "li", "$v0", "4"}},
		{LineNo: 7, Tokens: []string{"la", "$a0", "msg"}},
		{LineNo: 8, Tokens: []string{"syscall"}},
	}

	assert.Equal(expected, sts)
}

func TestTokenizeQuotes(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line   string
		tokens []string
	}{
		{`s: "a \"quoted\" word"`, []string{"s:", `a \"quoted\" word`}},
		{`s:"tight"`, []string{"s:", "tight"}},
		{`s: ""`, []string{"s:", ""}},
		{"s: \"tab\there\"", []string{"s:", "tab\there"}},
		{"a,,b", []string{"a", "b"}},
		{"a\r", []string{"a"}},
	}

	for _, entry := range table {
		sts, err := Tokenize(strings.NewReader(entry.line))
		if !assert.NoError(err, entry.line) {
			continue
		}
		if assert.Equal(1, len(sts), entry.line) {
			assert.Equal(entry.tokens, sts[0].Tokens, entry.line)
		}
	}
}

func TestTokenizeEquate(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		".equ PRINT_INT 1",
		".equ COUNT $(3 * 4)",
		"li $v0 PRINT_INT",
		"li $a0 $(COUNT + 1)",
		"li $t0 $( (1 << 4) | 2 )",
		`s: "PRINT_INT"`,
		"li $t1 NAME",
		"li $t2 LINENO",
	}

	lex := &Lexer{}
	lex.Predefine("NAME", "$t9")

	sts, err := lex.Tokenize(strings.NewReader(strings.Join(source, "\n")))
	if !assert.NoError(err) {
		return
	}

	expected := []asm.Statement{
		{LineNo: 3, Tokens: []string{"li", "$v0", "1"}},
		{LineNo: 4, Tokens: []string{"li", "$a0", "13"}},
		{LineNo: 5, Tokens: []string{"li", "$t0", "18"}},
		{LineNo: 6, Tokens: []string{"s:", "PRINT_INT"}},
		{LineNo: 7, Tokens: []string{"li", "$t1", "$t9"}},
		{LineNo: 8, Tokens: []string{"li", "$t2", "8"}},
	}
	assert.Equal(expected, sts)
	assert.Equal("12", lex.Equate["COUNT"])
}

func TestPredefineString(t *testing.T) {
	assert := assert.New(t)

	lex := &Lexer{}
	assert.NoError(lex.PredefineString("SIZE=0x10"))
	assert.NoError(lex.PredefineString(" EMPTY = "))
	assert.ErrorIs(lex.PredefineString("NOVALUE"), ErrDefineInvalid)
	assert.ErrorIs(lex.PredefineString("=1"), ErrDefineInvalid)
	assert.ErrorIs(lex.PredefineString("A B=1"), ErrDefineInvalid)

	sts, err := lex.Tokenize(strings.NewReader("li $t0 $(SIZE * 2)"))
	if assert.NoError(err) {
		assert.Equal([]string{"li", "$t0", "32"}, sts[0].Tokens)
	}
	assert.Equal("", lex.Equate["EMPTY"])
}

func TestTokenizeErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source []string
		lineno int
		err    error
	}{
		{[]string{"ok", `s: "open`}, 2, ErrQuoteUnterminated},
		{[]string{"li $t0 $(1 + 2"}, 1, ErrParenUnterminated},
		{[]string{".equ A"}, 1, ErrEquateSyntax},
		{[]string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{[]string{"", "", "li $t0 $(1 +)"}, 3, ErrParseExpression("1 +")},
		{[]string{`li $t0 $("str")`}, 1, ErrParseExpression(`"str"`)},
	}

	for _, entry := range table {
		sts, err := Tokenize(strings.NewReader(strings.Join(entry.source, "\n")))
		assert.Nil(sts, entry.source)

		var lexical *ErrLexical
		if assert.True(errors.As(err, &lexical), entry.source) {
			assert.Equal(entry.lineno, lexical.LineNo, entry.source)
		}
		assert.ErrorIs(err, entry.err, entry.source)
	}
}

func TestTokenizeLongLine(t *testing.T) {
	assert := assert.New(t)

	_, err := Tokenize(strings.NewReader(strings.Repeat("x", 1<<17)))

	var lexical *ErrLexical
	assert.True(errors.As(err, &lexical))
}
