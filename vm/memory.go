package vm

import (
	"iter"
	"strconv"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/internal"
)

// AddressKey is the memory key of a computed address.
func AddressKey(addr int32) string {
	return strconv.Itoa(int(addr))
}

// Memory is the address table: program symbols plus the cells written
// by store instructions. Cells are keyed by label name or by AddressKey.
type Memory struct {
	symbols *asm.SymbolTable
	cells   map[string]Value
	order   []string
}

// Reset discards all cells and installs a symbol table.
func (mem *Memory) Reset(symbols *asm.SymbolTable) {
	mem.symbols = symbols
	mem.cells = map[string]Value{}
	mem.order = mem.order[:0]
}

// Read returns the value at key. Code labels read as their address,
// data labels as their payload.
func (mem *Memory) Read(key string) (value Value, err error) {
	value, ok := mem.cells[key]
	if ok {
		return
	}

	if mem.symbols != nil {
		var sym asm.Symbol
		sym, ok = mem.symbols.Lookup(key)
		if ok && sym.Segment == asm.SEGMENT_CODE {
			value = IntValue(int32(sym.Address))
			return
		}
		if ok && sym.Payload != nil {
			value = StringValue(*sym.Payload)
			return
		}
	}

	err = ErrLabelMissing(key)
	return
}

// Write stores a value at key. Declared data and code labels are read-only.
func (mem *Memory) Write(key string, value Value) (err error) {
	if mem.symbols != nil {
		sym, ok := mem.symbols.Lookup(key)
		if ok && (sym.ReadOnly || sym.Segment == asm.SEGMENT_CODE) {
			err = ErrMemoryReadOnly
			return
		}
	}

	if mem.cells == nil {
		mem.cells = map[string]Value{}
	}

	_, ok := mem.cells[key]
	if !ok {
		mem.order = append(mem.order, key)
	}
	mem.cells[key] = value

	return
}

// Symbols iterates over the values of the program symbols.
func (mem *Memory) Symbols() iter.Seq2[string, Value] {
	return func(yield func(key string, value Value) bool) {
		if mem.symbols == nil {
			return
		}
		for name := range mem.symbols.All() {
			if _, written := mem.cells[name]; written {
				continue
			}
			value, err := mem.Read(name)
			if err != nil {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// Cells iterates over the written cells, in order of first write.
func (mem *Memory) Cells() iter.Seq2[string, Value] {
	return func(yield func(key string, value Value) bool) {
		for _, key := range mem.order {
			if !yield(key, mem.cells[key]) {
				return
			}
		}
	}
}

// All iterates over every readable key.
func (mem *Memory) All() iter.Seq2[string, Value] {
	return internal.IterSeq2Concat(mem.Symbols(), mem.Cells())
}
