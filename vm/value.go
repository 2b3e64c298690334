package vm

import (
	"fmt"
	"strings"

	"github.com/ezrec/mipsim/asm"
)

// ValueType is the tag of a Value.
type ValueType int

//go:generate go tool stringer -linecomment -type=ValueType
const (
	VALUE_NONE   = ValueType(0) // none
	VALUE_INT    = ValueType(1) // int
	VALUE_STRING = ValueType(2) // string
)

// Value is the contents of a register or memory cell.
type Value struct {
	Type     ValueType
	Int      int32
	Data     string
	Encoding string
}

// IntValue makes an integer value.
func IntValue(n int32) Value {
	return Value{Type: VALUE_INT, Int: n}
}

// StringValue makes a string value from a data payload.
func StringValue(payload asm.Payload) Value {
	return Value{Type: VALUE_STRING, Data: payload.Data, Encoding: payload.Encoding}
}

// Number returns the value as an integer. Strings that spell an integer
// are converted.
func (v Value) Number() (n int32, err error) {
	switch v.Type {
	case VALUE_INT:
		n = v.Int
	case VALUE_STRING:
		n, err = asm.ParseInteger(strings.TrimSpace(v.Data))
		if err != nil {
			err = ErrValueNotNumeric
		}
	default:
		err = ErrRegisterUninitialized
	}
	return
}

// Payload returns the value as a data payload.
func (v Value) Payload() (payload asm.Payload, err error) {
	switch v.Type {
	case VALUE_STRING:
		payload = asm.Payload{Encoding: v.Encoding, Data: v.Data}
	case VALUE_INT:
		err = ErrValueNotString
	default:
		err = ErrRegisterUninitialized
	}
	return
}

func (v Value) String() string {
	switch v.Type {
	case VALUE_INT:
		return fmt.Sprintf("%d", v.Int)
	case VALUE_STRING:
		return fmt.Sprintf("%q", v.Data)
	}
	return "-"
}
