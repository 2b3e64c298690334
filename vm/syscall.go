package vm

import (
	"log"
	"strconv"

	"github.com/ezrec/mipsim/asm"
)

// Syscall codes, selected by $v0.
const (
	SYSCALL_PRINT_INT    = 1
	SYSCALL_PRINT_STRING = 4
	SYSCALL_EXIT         = 10
)

// flusher is an output that buffers.
type flusher interface {
	Flush() error
}

// syscall executes the OS family.
func (m *Machine) syscall(kind asm.Kind) (err error) {
	if kind != asm.KIND_INTERRUPT {
		err = ErrActionInvalid
		return
	}

	code, err := m.Register.Number("$v0")
	if err != nil {
		return
	}

	switch code {
	case SYSCALL_PRINT_INT:
		var n int32
		n, err = m.Register.Number("$a0")
		if err != nil {
			return
		}
		_, err = m.Output.Write([]byte(strconv.Itoa(int(n))))
	case SYSCALL_PRINT_STRING:
		var value Value
		value, err = m.Register.Get("$a0")
		if err != nil {
			return
		}
		var payload asm.Payload
		payload, err = value.Payload()
		if err != nil {
			err = &ErrRegister{Name: "$a0", Err: err}
			return
		}
		var data []byte
		data, err = Encode(payload)
		if err != nil {
			return
		}
		_, err = m.Output.Write(data)
	case SYSCALL_EXIT:
		if m.Verbose {
			log.Printf("vm: exit after %d ticks", m.Ticks)
		}
		m.Running = false
		out, ok := m.Output.(flusher)
		if ok {
			err = out.Flush()
		}
	default:
		err = ErrSyscallInvalid
	}

	return
}
