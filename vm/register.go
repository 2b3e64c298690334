package vm

import (
	"iter"
	"regexp"
	"strconv"
)

// registerNames is the canonical register order. '$r<N>' names index N
// of this table.
var registerNames = [...]string{
	"$zero", "$at", "$hi", "$lo",
	"$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7", "$s8", "$s9",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp", "$sp", "$fp", "$ra",
}

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = len(registerNames)

var registerIndex = func() map[string]int {
	index := make(map[string]int, REGISTER_COUNT)
	for n, name := range registerNames {
		index[name] = n
	}
	return index
}()

var ordinalRegex = regexp.MustCompile(`^\$r(\d+)$`)

// RegisterIndex returns the register file slot of a register name.
func RegisterIndex(name string) (index int, err error) {
	index, ok := registerIndex[name]
	if ok {
		return
	}

	match := ordinalRegex.FindStringSubmatch(name)
	if match != nil {
		index, err = strconv.Atoi(match[1])
		if err == nil && index < REGISTER_COUNT {
			return
		}
	}

	index = -1
	err = &ErrRegister{Name: name, Err: ErrRegisterInvalid}
	return
}

// RegisterName returns the canonical name of a register file slot.
func RegisterName(index int) string {
	return registerNames[index]
}

// RegisterFile is the machine's register bank.
type RegisterFile struct {
	value [REGISTER_COUNT]Value
}

// Reset clears all registers; $zero reads as 0.
func (rf *RegisterFile) Reset() {
	clear(rf.value[:])
	rf.value[0] = IntValue(0)
}

// Get reads an initialized register.
func (rf *RegisterFile) Get(name string) (value Value, err error) {
	index, err := RegisterIndex(name)
	if err != nil {
		return
	}

	value = rf.value[index]
	if index == 0 {
		value = IntValue(0)
	}

	if value.Type == VALUE_NONE {
		err = &ErrRegister{Name: name, Err: ErrRegisterUninitialized}
	}
	return
}

// Number reads a register as an integer.
func (rf *RegisterFile) Number(name string) (n int32, err error) {
	value, err := rf.Get(name)
	if err != nil {
		return
	}

	n, err = value.Number()
	if err != nil {
		err = &ErrRegister{Name: name, Err: err}
	}
	return
}

// Set writes a register. $zero cannot be written.
func (rf *RegisterFile) Set(name string, value Value) (err error) {
	index, err := RegisterIndex(name)
	if err != nil {
		return
	}

	if index == 0 {
		err = &ErrRegister{Name: name, Err: ErrRegisterZero}
		return
	}

	rf.value[index] = value
	return
}

// All iterates over the registers in canonical order.
func (rf *RegisterFile) All() iter.Seq2[string, Value] {
	return func(yield func(name string, value Value) bool) {
		for n, name := range registerNames {
			if !yield(name, rf.value[n]) {
				return
			}
		}
	}
}
