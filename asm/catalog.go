package asm

import (
	"slices"
	"strings"
)

// Action is the family of an instruction.
// The line comment names are also the persisted wire spelling.
type Action int

//go:generate go tool stringer -linecomment -type=Action
const (
	ACTION_LOAD     = Action(0)  // Load
	ACTION_MOVE     = Action(1)  // Move
	ACTION_STORE    = Action(2)  // Store
	ACTION_ADD      = Action(3)  // Add
	ACTION_SUBTRACT = Action(4)  // Subtract
	ACTION_MULTIPLY = Action(5)  // Multiplication
	ACTION_DIVIDE   = Action(6)  // Division
	ACTION_AND      = Action(7)  // And
	ACTION_OR       = Action(8)  // Or
	ACTION_SHIFT    = Action(9)  // Shift
	ACTION_BRANCH   = Action(10) // Branch
	ACTION_OS       = Action(11) // OS
)

// Kind is the variant of an Action.
// The line comment names are also the persisted wire spelling.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_INTEGER        = Kind(0)  // Integer
	KIND_ADDRESS        = Kind(1)  // Address
	KIND_REGISTER       = Kind(2)  // Register
	KIND_IMMEDIATE      = Kind(3)  // Immidiate
	KIND_LEFT           = Kind(4)  // Left
	KIND_RIGHT          = Kind(5)  // Right
	KIND_EQUAL          = Kind(6)  // Equality
	KIND_NOT_EQUAL      = Kind(7)  // Inequality
	KIND_GREATER        = Kind(8)  // Greater
	KIND_LESS           = Kind(9)  // Lesser
	KIND_EQUAL_ZERO     = Kind(10) // EqualtoZero
	KIND_NOT_EQUAL_ZERO = Kind(11) // InequaltoZero
	KIND_JUMP_REG       = Kind(12) // JumpReg
	KIND_JUMP           = Kind(13) // Jump
	KIND_JUMP_LINK      = Kind(14) // JumpLink
	KIND_INTERRUPT      = Kind(15) // Interrupt
)

// ParseAction returns the action with the given wire name.
func ParseAction(name string) (action Action, ok bool) {
	for action = ACTION_LOAD; action <= ACTION_OS; action++ {
		if action.String() == name {
			ok = true
			return
		}
	}
	return
}

// ParseKind returns the kind with the given wire name.
func ParseKind(name string) (kind Kind, ok bool) {
	for kind = KIND_INTEGER; kind <= KIND_INTERRUPT; kind++ {
		if kind.String() == name {
			ok = true
			return
		}
	}
	return
}

// Descriptor is the static shape of a mnemonic.
type Descriptor struct {
	Action  Action
	Kind    Kind
	Arity   int      // Operands written in source.
	Roles   []Role   // Roles of all operands, implied ones included.
	Implied []string // Operands appended after the source operands.
}

const (
	rR = ROLE_REGISTER
	rI = ROLE_INTEGER
	rL = ROLE_LABEL
)

var catalog = map[string]Descriptor{
	"li":      {ACTION_LOAD, KIND_INTEGER, 2, []Role{rR, rI}, nil},
	"la":      {ACTION_LOAD, KIND_ADDRESS, 2, []Role{rR, rL}, nil},
	"lw":      {ACTION_LOAD, KIND_REGISTER, 3, []Role{rR, rR, rI}, nil},
	"move":    {ACTION_MOVE, KIND_REGISTER, 2, []Role{rR, rR}, nil},
	"mfc0":    {ACTION_MOVE, KIND_REGISTER, 2, []Role{rR, rR}, nil},
	"mfhi":    {ACTION_MOVE, KIND_REGISTER, 1, []Role{rR, rR}, []string{"$hi"}},
	"mflo":    {ACTION_MOVE, KIND_REGISTER, 1, []Role{rR, rR}, []string{"$lo"}},
	"sw":      {ACTION_STORE, KIND_REGISTER, 3, []Role{rR, rR, rI}, nil},
	"si":      {ACTION_STORE, KIND_IMMEDIATE, 2, []Role{rI, rL}, nil},
	"add":     {ACTION_ADD, KIND_REGISTER, 3, []Role{rR, rR, rR}, nil},
	"addi":    {ACTION_ADD, KIND_IMMEDIATE, 3, []Role{rR, rR, rI}, nil},
	"sub":     {ACTION_SUBTRACT, KIND_REGISTER, 3, []Role{rR, rR, rR}, nil},
	"mult":    {ACTION_MULTIPLY, KIND_REGISTER, 2, []Role{rR, rR}, nil},
	"div":     {ACTION_DIVIDE, KIND_REGISTER, 2, []Role{rR, rR}, nil},
	"and":     {ACTION_AND, KIND_REGISTER, 3, []Role{rR, rR, rR}, nil},
	"andi":    {ACTION_AND, KIND_IMMEDIATE, 3, []Role{rR, rR, rI}, nil},
	"or":      {ACTION_OR, KIND_REGISTER, 3, []Role{rR, rR, rR}, nil},
	"ori":     {ACTION_OR, KIND_IMMEDIATE, 3, []Role{rR, rR, rI}, nil},
	"sll":     {ACTION_SHIFT, KIND_LEFT, 3, []Role{rR, rR, rI}, nil},
	"srl":     {ACTION_SHIFT, KIND_RIGHT, 3, []Role{rR, rR, rI}, nil},
	"beq":     {ACTION_BRANCH, KIND_EQUAL, 3, []Role{rR, rR, rL}, nil},
	"bne":     {ACTION_BRANCH, KIND_NOT_EQUAL, 3, []Role{rR, rR, rL}, nil},
	"bgt":     {ACTION_BRANCH, KIND_GREATER, 3, []Role{rR, rR, rL}, nil},
	"blt":     {ACTION_BRANCH, KIND_LESS, 3, []Role{rR, rR, rL}, nil},
	"beqz":    {ACTION_BRANCH, KIND_EQUAL_ZERO, 2, []Role{rR, rL}, nil},
	"bez":     {ACTION_BRANCH, KIND_EQUAL_ZERO, 2, []Role{rR, rL}, nil},
	"bnez":    {ACTION_BRANCH, KIND_NOT_EQUAL_ZERO, 2, []Role{rR, rL}, nil},
	"jr":      {ACTION_BRANCH, KIND_JUMP_REG, 1, []Role{rR}, nil},
	"j":       {ACTION_BRANCH, KIND_JUMP, 1, []Role{rL}, nil},
	"jal":     {ACTION_BRANCH, KIND_JUMP_LINK, 1, []Role{rL}, nil},
	"syscall": {ACTION_OS, KIND_INTERRUPT, 0, nil, nil},
}

// Lookup finds the descriptor for a mnemonic, ignoring case.
func Lookup(mnemonic string) (desc Descriptor, ok bool) {
	desc, ok = catalog[strings.ToLower(mnemonic)]
	if !ok {
		return
	}

	desc.Roles = slices.Clone(desc.Roles)
	desc.Implied = slices.Clone(desc.Implied)
	return
}

// LookupKind finds the first mnemonic, in sorted order, with the given
// action, kind and arity.
func LookupKind(action Action, kind Kind, arity int) (mnemonic string, desc Descriptor, ok bool) {
	for _, name := range Mnemonics() {
		desc = catalog[name]
		if desc.Action == action && desc.Kind == kind && desc.Arity == arity {
			mnemonic = name
			desc, ok = Lookup(name)
			return
		}
	}

	desc = Descriptor{}
	return
}

// Mnemonics returns all known mnemonics, sorted.
func Mnemonics() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
