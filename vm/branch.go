package vm

import (
	"github.com/ezrec/mipsim/asm"
)

// target resolves a code label to an instruction index.
func (m *Machine) target(label string) (pc int, err error) {
	sym, ok := m.Program.Symbols.Lookup(label)
	if !ok || sym.Segment != asm.SEGMENT_CODE {
		err = ErrLabelMissing(label)
		return
	}

	pc = sym.Address
	return
}

// jump moves the program counter; the target must be an instruction.
func (m *Machine) jump(pc int) (err error) {
	if pc < 0 || pc >= len(m.Program.Instructions) {
		err = ErrPcRange
		return
	}

	m.Pc = pc
	return
}

// jumpLabel jumps to a code label when cond holds. The label is
// resolved either way.
func (m *Machine) jumpLabel(label string, cond bool) (err error) {
	pc, err := m.target(label)
	if err != nil || !cond {
		return
	}

	return m.jump(pc)
}

// branch executes the Branch family.
func (m *Machine) branch(kind asm.Kind, op []string) (err error) {
	switch kind {
	case asm.KIND_EQUAL, asm.KIND_NOT_EQUAL, asm.KIND_GREATER, asm.KIND_LESS:
		var a, b int32
		a, err = m.Register.Number(op[0])
		if err != nil {
			return
		}
		b, err = m.Register.Number(op[1])
		if err != nil {
			return
		}
		var cond bool
		switch kind {
		case asm.KIND_EQUAL:
			cond = a == b
		case asm.KIND_NOT_EQUAL:
			cond = a != b
		case asm.KIND_GREATER:
			cond = a > b
		case asm.KIND_LESS:
			cond = a < b
		}
		err = m.jumpLabel(op[2], cond)
	case asm.KIND_EQUAL_ZERO, asm.KIND_NOT_EQUAL_ZERO:
		var a int32
		a, err = m.Register.Number(op[0])
		if err != nil {
			return
		}
		err = m.jumpLabel(op[1], (a == 0) == (kind == asm.KIND_EQUAL_ZERO))
	case asm.KIND_JUMP_REG:
		var pc int32
		pc, err = m.Register.Number(op[0])
		if err != nil {
			return
		}
		err = m.jump(int(pc))
	case asm.KIND_JUMP:
		err = m.jumpLabel(op[0], true)
	case asm.KIND_JUMP_LINK:
		var pc int
		pc, err = m.target(op[0])
		if err != nil {
			return
		}
		err = m.Register.Set("$ra", IntValue(int32(m.Pc)))
		if err != nil {
			return
		}
		err = m.jump(pc)
	default:
		err = ErrActionInvalid
	}

	return
}
