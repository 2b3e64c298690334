package asm

import (
	"iter"
	"strings"
)

// Segment is the section a symbol was declared in.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEGMENT_NONE = Segment(0) // none
	SEGMENT_DATA = Segment(1) // Data Declaration
	SEGMENT_CODE = Segment(2) // Program Instructions
)

// ParseSegment returns the segment with the given wire name.
func ParseSegment(name string) (segment Segment, ok bool) {
	for segment = SEGMENT_NONE; segment <= SEGMENT_CODE; segment++ {
		if segment.String() == name {
			ok = true
			return
		}
	}
	return
}

// Statement is one tokenized source line.
type Statement struct {
	LineNo int
	Tokens []string
}

// String rejoins the tokens, for diagnostics.
func (st Statement) String() string {
	return strings.Join(st.Tokens, " ")
}

// Instruction is a resolved, executable statement.
type Instruction struct {
	LineNo   int      // Source line.
	Mnemonic string   // Mnemonic as written.
	Action   Action   // Family.
	Kind     Kind     // Variant.
	Arity    int      // Operands written in source.
	Operands []string // Operands, implied ones included.
	Roles    []Role   // Role of each operand.
}

// Payload is the contents of a data declaration.
type Payload struct {
	Encoding string
	Data     string
}

// Symbol is a named data declaration or code label.
type Symbol struct {
	Name     string
	Segment  Segment
	Address  int      // Instruction index for code symbols.
	Payload  *Payload // Contents for data symbols.
	ReadOnly bool
}

// Resolved is true for code labels and for data that carries a payload.
func (sym *Symbol) Resolved() bool {
	return sym.Segment == SEGMENT_CODE || sym.Payload != nil
}

// SymbolTable is an ordered set of uniquely named symbols.
type SymbolTable struct {
	entries []Symbol
	index   map[string]int
}

// Define inserts a symbol. An already resolved symbol of the same name is
// kept, and inserted is false; an unresolved placeholder is replaced.
func (st *SymbolTable) Define(sym Symbol) (inserted bool) {
	if st.index == nil {
		st.index = make(map[string]int, 16)
	}

	n, ok := st.index[sym.Name]
	if ok {
		if st.entries[n].Resolved() {
			return
		}
		st.entries[n] = sym
		inserted = true
		return
	}

	st.index[sym.Name] = len(st.entries)
	st.entries = append(st.entries, sym)
	inserted = true
	return
}

// Lookup finds a symbol by name.
func (st *SymbolTable) Lookup(name string) (sym Symbol, ok bool) {
	n, ok := st.index[name]
	if !ok {
		return
	}
	sym = st.entries[n]
	return
}

// Len is the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// All iterates over the symbols in declaration order.
func (st *SymbolTable) All() iter.Seq2[string, Symbol] {
	return func(yield func(name string, sym Symbol) bool) {
		for _, sym := range st.entries {
			if !yield(sym.Name, sym) {
				return
			}
		}
	}
}

// Program is the output of the resolver.
type Program struct {
	Instructions []Instruction
	Symbols      SymbolTable
}

// Debug returns the instruction at pc, if any.
func (prog *Program) Debug(pc int) (insn *Instruction, ok bool) {
	if pc < 0 || pc >= len(prog.Instructions) {
		return
	}
	insn = &prog.Instructions[pc]
	ok = true
	return
}
