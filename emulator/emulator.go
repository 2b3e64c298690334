// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/internal"
	"github.com/ezrec/mipsim/lexer"
	"github.com/ezrec/mipsim/vm"
)

// Equates every program sees.
var _emulator_defines = map[string]string{
	"SYS_PRINT_INT":    "1",
	"SYS_PRINT_STRING": "4",
	"SYS_EXIT":         "10",
}

// Emulator state. Assembler + machine.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Machine *vm.Machine  // Reference to the machine.
	Program *asm.Program // Reference to the currently loaded program.

	defines map[string]string
}

// NewEmulator creates a new emulator printing to output.
func NewEmulator(output io.Writer) (emu *Emulator) {
	emu = &Emulator{
		Machine: vm.NewMachine(output),
		Program: &asm.Program{},
		defines: map[string]string{},
	}

	return
}

// Define adds an equate for subsequently assembled sources.
func (emu *Emulator) Define(name string, value string) {
	emu.defines[name] = value
}

// DefineString adds an equate from a 'NAME=VALUE' string.
func (emu *Emulator) DefineString(define string) (err error) {
	// Validate with the lexer's own rules.
	lex := &lexer.Lexer{}
	err = lex.PredefineString(define)
	if err != nil {
		return
	}

	name, value, _ := strings.Cut(define, "=")
	emu.Define(strings.TrimSpace(name), strings.TrimSpace(value))
	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(emu.defines))
}

// Assemble tokenizes and resolves a source, and makes it the current program.
func (emu *Emulator) Assemble(input io.Reader) (prog *asm.Program, err error) {
	lex := &lexer.Lexer{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		lex.Predefine(name, value)
	}

	statements, err := lex.Tokenize(input)
	if err != nil {
		return
	}

	res := &asm.Resolver{Verbose: emu.Verbose}
	prog, err = res.Resolve(statements)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %d instructions, %d symbols", len(prog.Instructions), prog.Symbols.Len())
	}

	emu.Program = prog
	return
}

// Load makes an already resolved program the current program.
func (emu *Emulator) Load(prog *asm.Program) {
	emu.Program = prog
}

// LineNo returns the source line of the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	return emu.Machine.LineNo()
}

// Reset loads the current program into the machine, ready to run from main.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose

	return emu.Machine.Load(emu.Program)
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	return emu.Machine.Tick()
}

// Run resets and runs the current program to completion.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// String dumps the machine registers.
func (emu *Emulator) String() string {
	return emu.Machine.String()
}
