package vm

import (
	"github.com/ezrec/mipsim/asm"
)

// operand reads the second source of an ALU instruction, a register or
// an immediate depending on the kind.
func (m *Machine) operand(kind asm.Kind, token string) (n int32, err error) {
	switch kind {
	case asm.KIND_IMMEDIATE, asm.KIND_LEFT, asm.KIND_RIGHT:
		n, err = asm.ParseInteger(token)
	default:
		n, err = m.Register.Number(token)
	}
	return
}

// alu executes the two source, one destination arithmetic families.
// Arithmetic wraps at 32 bits.
func (m *Machine) alu(action asm.Action, kind asm.Kind, op []string) (err error) {
	switch kind {
	case asm.KIND_REGISTER, asm.KIND_IMMEDIATE, asm.KIND_LEFT, asm.KIND_RIGHT:
	default:
		err = ErrActionInvalid
		return
	}

	a, err := m.Register.Number(op[1])
	if err != nil {
		return
	}

	b, err := m.operand(kind, op[2])
	if err != nil {
		return
	}

	var value int32
	switch action {
	case asm.ACTION_ADD:
		value = a + b
	case asm.ACTION_SUBTRACT:
		value = a - b
	case asm.ACTION_AND:
		// The first operand when it is zero, otherwise the second.
		value = b
		if a == 0 {
			value = a
		}
	case asm.ACTION_OR:
		// The first operand when it is non-zero, otherwise the second.
		value = b
		if a != 0 {
			value = a
		}
	case asm.ACTION_SHIFT:
		switch kind {
		case asm.KIND_LEFT:
			value = int32(uint32(a) << (uint32(b) & 31))
		case asm.KIND_RIGHT:
			value = int32(uint32(a) >> (uint32(b) & 31))
		default:
			err = ErrActionInvalid
			return
		}
	default:
		err = ErrActionInvalid
		return
	}

	return m.Register.Set(op[0], IntValue(value))
}

// muldiv executes multiply and divide, which write $lo and $hi.
func (m *Machine) muldiv(action asm.Action, kind asm.Kind, op []string) (err error) {
	if kind != asm.KIND_REGISTER {
		err = ErrActionInvalid
		return
	}

	a, err := m.Register.Number(op[0])
	if err != nil {
		return
	}

	b, err := m.Register.Number(op[1])
	if err != nil {
		return
	}

	switch action {
	case asm.ACTION_MULTIPLY:
		return m.Register.Set("$lo", IntValue(a*b))
	case asm.ACTION_DIVIDE:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		err = m.Register.Set("$lo", IntValue(a/b))
		if err != nil {
			return
		}
		return m.Register.Set("$hi", IntValue(a%b))
	}

	err = ErrActionInvalid
	return
}
