// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
	"strings"
)

// Default encoding of data declarations.
const DefaultEncoding = "ASCII"

// encodingMap maps encoding directives to payload encodings.
var encodingMap = map[string]string{
	"ascii":   "ASCII",
	"asciiz":  "ASCII",
	"latin1":  "latin1",
	"binary":  "latin1",
	"utf8":    "UTF-8",
	"utf16le": "UTF-16LE",
	"ucs2":    "UTF-16LE",
	"utf16be": "UTF-16BE",
}

// EncodingOf maps an encoding directive, such as '.asciiz', to its name.
func EncodingOf(directive string) (encoding string, err error) {
	encoding, ok := encodingMap[strings.ToLower(strings.TrimPrefix(directive, "."))]
	if !ok {
		err = ErrEncodingInvalid(directive)
	}
	return
}

var unescaper = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\"`, "\"",
	`\r`, "\r",
	`\f`, "\f",
)

// Unescape expands the backslash escapes of a data declaration.
func Unescape(data string) string {
	return unescaper.Replace(data)
}

// Resolver turns statements into a Program.
type Resolver struct {
	Verbose bool // If set, logs labels as they are defined.

	segment  Segment
	codeBase int
	prog     *Program
}

// Resolve resolves statements with a default Resolver.
func Resolve(statements []Statement) (prog *Program, err error) {
	res := &Resolver{}
	return res.Resolve(statements)
}

// Resolve validates every statement and builds the program.
// On error no program is returned.
func (res *Resolver) Resolve(statements []Statement) (prog *Program, err error) {
	res.segment = SEGMENT_NONE
	res.codeBase = 0
	res.prog = &Program{}

	for _, st := range statements {
		err = res.statement(st.LineNo, st.Tokens)
		if err != nil {
			err = &ErrSyntax{LineNo: st.LineNo, Line: st.String(), Err: err}
			return
		}
	}

	prog = res.prog
	res.prog = nil
	return
}

// statement resolves a single statement.
func (res *Resolver) statement(lineno int, tokens []string) (err error) {
	if len(tokens) == 0 {
		err = ErrTokenMissing
		return
	}

	head := tokens[0]
	switch head {
	case ".data", ".text":
		if len(tokens) != 1 {
			err = ErrSegmentExtra
			return
		}
		if head == ".data" {
			res.segment = SEGMENT_DATA
		} else {
			res.segment = SEGMENT_CODE
			res.codeBase = len(res.prog.Instructions)
		}
		return
	}

	if res.segment == SEGMENT_NONE {
		err = ErrSegmentMissing
		return
	}

	if Classify(head, ROLE_LABEL_DEF) {
		name := strings.TrimSuffix(head, ":")
		if res.segment == SEGMENT_DATA {
			return res.data(name, tokens[1:])
		}

		res.define(Symbol{
			Name:    name,
			Segment: SEGMENT_CODE,
			Address: len(res.prog.Instructions) - res.codeBase,
		})

		if len(tokens) == 1 {
			return
		}
		tokens = tokens[1:]
	}

	return res.instruction(lineno, tokens)
}

// data resolves a data declaration body.
func (res *Resolver) data(name string, args []string) (err error) {
	payload := &Payload{Encoding: DefaultEncoding}

	switch len(args) {
	case 0:
		err = ErrDataMissing
		return
	case 1:
		payload.Data = Unescape(args[0])
	case 2:
		payload.Encoding, err = EncodingOf(args[0])
		if err != nil {
			return
		}
		payload.Data = Unescape(args[1])
	default:
		err = ErrDataExtra
		return
	}

	res.define(Symbol{
		Name:     name,
		Segment:  SEGMENT_DATA,
		Payload:  payload,
		ReadOnly: true,
	})

	return
}

// define adds a symbol, keeping the first definition of a name.
func (res *Resolver) define(sym Symbol) {
	if !res.prog.Symbols.Define(sym) {
		if res.Verbose {
			log.Printf("asm: label %v already defined, ignored", sym.Name)
		}
		return
	}

	if res.Verbose {
		log.Printf("asm: label %v (%v)", sym.Name, sym.Segment)
	}
}

// instruction resolves a mnemonic and its operands.
func (res *Resolver) instruction(lineno int, tokens []string) (err error) {
	mnemonic := tokens[0]
	desc, ok := Lookup(mnemonic)
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := tokens[1:]
	if len(args) != desc.Arity {
		err = &ErrOperandCount{Mnemonic: mnemonic, Want: desc.Arity, Got: len(args)}
		return
	}

	for n, arg := range args {
		role := desc.Roles[n]
		if !Classify(arg, role) {
			err = &ErrOperandRole{Mnemonic: mnemonic, Role: role, Token: arg}
			return
		}
	}

	operands := make([]string, 0, len(args)+len(desc.Implied))
	operands = append(operands, args...)
	operands = append(operands, desc.Implied...)

	res.prog.Instructions = append(res.prog.Instructions, Instruction{
		LineNo:   lineno,
		Mnemonic: strings.ToLower(mnemonic),
		Action:   desc.Action,
		Kind:     desc.Kind,
		Arity:    desc.Arity,
		Operands: operands,
		Roles:    desc.Roles,
	})

	return
}
