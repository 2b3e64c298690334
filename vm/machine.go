// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"io"
	"log"

	"github.com/ezrec/mipsim/asm"
)

// Machine is the register machine that executes a resolved program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Register RegisterFile // Register bank.
	Memory   Memory       // Address table.
	Program  *asm.Program // Currently loaded program.
	Pc       int          // Index of the next instruction; -1 when unloaded.
	Running  bool         // Cleared by the exit syscall or a fault.
	Output   io.Writer    // Destination of the print syscalls.

	Ticks int // Instructions executed since Load.
}

// NewMachine creates a machine that prints to output.
func NewMachine(output io.Writer) (m *Machine) {
	if output == nil {
		output = io.Discard
	}

	m = &Machine{
		Program: &asm.Program{},
		Output:  output,
	}
	m.Reset()

	return
}

// Reset the machine state, keeping the loaded program.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.Register.Reset()
	m.Memory.Reset(&m.Program.Symbols)
	m.Pc = -1
	m.Running = false
	m.Ticks = 0
}

// Load installs a program and positions the machine at its 'main' label.
func (m *Machine) Load(prog *asm.Program) (err error) {
	m.Program = prog
	m.Reset()

	main, ok := prog.Symbols.Lookup("main")
	if !ok || main.Segment != asm.SEGMENT_CODE ||
		main.Address < 0 || main.Address >= len(prog.Instructions) {
		err = &ErrRuntime{Err: ErrEntryPoint}
		return
	}

	m.Pc = main.Address
	m.Running = true

	if m.Verbose {
		log.Printf("vm: entry at %d", m.Pc)
	}

	return
}

// LineNo returns the source line of the next instruction.
func (m *Machine) LineNo() int {
	insn, ok := m.Program.Debug(m.Pc)
	if !ok {
		return 0
	}
	return insn.LineNo
}

// Tick executes a single instruction. Done is set once the program has
// exited or run past its last instruction.
func (m *Machine) Tick() (done bool, err error) {
	if !m.Running {
		done = true
		return
	}

	if m.Pc == len(m.Program.Instructions) {
		m.Running = false
		done = true
		return
	}

	insn, ok := m.Program.Debug(m.Pc)
	if !ok {
		m.Running = false
		err = &ErrRuntime{Err: ErrPcRange}
		return
	}

	defer func() {
		if err != nil {
			m.Running = false
			err = &ErrRuntime{LineNo: insn.LineNo, Err: err}
		}
	}()

	if m.Verbose {
		log.Printf("%03d: %v %v", m.Pc, insn.Mnemonic, insn.Operands[:insn.Arity])
	}

	m.Pc++
	m.Ticks++

	err = m.Execute(insn)
	if err != nil {
		return
	}

	done = !m.Running
	return
}

// Run ticks until the program is done or faults.
func (m *Machine) Run() (err error) {
	for {
		var done bool
		done, err = m.Tick()
		if err != nil || done {
			return
		}
	}
}

// Execute executes a single instruction against the machine state.
func (m *Machine) Execute(insn *asm.Instruction) (err error) {
	op := insn.Operands

	switch insn.Action {
	case asm.ACTION_LOAD:
		err = m.load(insn.Kind, op)
	case asm.ACTION_MOVE:
		err = m.move(insn.Kind, op)
	case asm.ACTION_STORE:
		err = m.store(insn.Kind, op)
	case asm.ACTION_ADD, asm.ACTION_SUBTRACT, asm.ACTION_AND, asm.ACTION_OR, asm.ACTION_SHIFT:
		err = m.alu(insn.Action, insn.Kind, op)
	case asm.ACTION_MULTIPLY, asm.ACTION_DIVIDE:
		err = m.muldiv(insn.Action, insn.Kind, op)
	case asm.ACTION_BRANCH:
		err = m.branch(insn.Kind, op)
	case asm.ACTION_OS:
		err = m.syscall(insn.Kind)
	default:
		err = ErrActionInvalid
	}

	return
}

// String returns the machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "pc", m.Pc)
	for name, value := range m.Register.All() {
		if value.Type == VALUE_NONE {
			continue
		}
		text += fmt.Sprintf("% 5s: %v\n", name, value)
	}
	return
}

// load executes the Load family.
func (m *Machine) load(kind asm.Kind, op []string) (err error) {
	var value Value

	switch kind {
	case asm.KIND_INTEGER:
		var n int32
		n, err = asm.ParseInteger(op[1])
		value = IntValue(n)
	case asm.KIND_ADDRESS:
		value, err = m.Memory.Read(op[1])
	case asm.KIND_REGISTER:
		var addr int32
		addr, err = m.address(op[1], op[2])
		if err != nil {
			return
		}
		value, err = m.Memory.Read(AddressKey(addr))
	default:
		err = ErrActionInvalid
	}
	if err != nil {
		return
	}

	return m.Register.Set(op[0], value)
}

// move executes the Move family.
func (m *Machine) move(kind asm.Kind, op []string) (err error) {
	if kind != asm.KIND_REGISTER {
		err = ErrActionInvalid
		return
	}

	value, err := m.Register.Get(op[1])
	if err != nil {
		return
	}

	return m.Register.Set(op[0], value)
}

// store executes the Store family.
func (m *Machine) store(kind asm.Kind, op []string) (err error) {
	switch kind {
	case asm.KIND_REGISTER:
		var value Value
		value, err = m.Register.Get(op[0])
		if err != nil {
			return
		}
		var addr int32
		addr, err = m.address(op[1], op[2])
		if err != nil {
			return
		}
		err = m.Memory.Write(AddressKey(addr), value)
	case asm.KIND_IMMEDIATE:
		var n int32
		n, err = asm.ParseInteger(op[0])
		if err != nil {
			return
		}
		err = m.Memory.Write(op[1], IntValue(n))
	default:
		err = ErrActionInvalid
	}

	return
}

// address computes base register plus literal offset.
func (m *Machine) address(base string, offset string) (addr int32, err error) {
	addr, err = m.Register.Number(base)
	if err != nil {
		return
	}

	off, err := asm.ParseInteger(offset)
	if err != nil {
		return
	}

	addr += off
	return
}
