package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		mnemonic string
		action   Action
		kind     Kind
		arity    int
		roles    []Role
	}{
		{"li", ACTION_LOAD, KIND_INTEGER, 2, []Role{ROLE_REGISTER, ROLE_INTEGER}},
		{"LA", ACTION_LOAD, KIND_ADDRESS, 2, []Role{ROLE_REGISTER, ROLE_LABEL}},
		{"lw", ACTION_LOAD, KIND_REGISTER, 3, []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_INTEGER}},
		{"move", ACTION_MOVE, KIND_REGISTER, 2, []Role{ROLE_REGISTER, ROLE_REGISTER}},
		{"si", ACTION_STORE, KIND_IMMEDIATE, 2, []Role{ROLE_INTEGER, ROLE_LABEL}},
		{"Addi", ACTION_ADD, KIND_IMMEDIATE, 3, []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_INTEGER}},
		{"mult", ACTION_MULTIPLY, KIND_REGISTER, 2, []Role{ROLE_REGISTER, ROLE_REGISTER}},
		{"srl", ACTION_SHIFT, KIND_RIGHT, 3, []Role{ROLE_REGISTER, ROLE_REGISTER, ROLE_INTEGER}},
		{"bez", ACTION_BRANCH, KIND_EQUAL_ZERO, 2, []Role{ROLE_REGISTER, ROLE_LABEL}},
		{"jr", ACTION_BRANCH, KIND_JUMP_REG, 1, []Role{ROLE_REGISTER}},
		{"j", ACTION_BRANCH, KIND_JUMP, 1, []Role{ROLE_LABEL}},
		{"jal", ACTION_BRANCH, KIND_JUMP_LINK, 1, []Role{ROLE_LABEL}},
		{"SYSCALL", ACTION_OS, KIND_INTERRUPT, 0, nil},
	}

	for _, entry := range table {
		desc, ok := Lookup(entry.mnemonic)
		if !assert.True(ok, entry.mnemonic) {
			continue
		}
		assert.Equal(entry.action, desc.Action, entry.mnemonic)
		assert.Equal(entry.kind, desc.Kind, entry.mnemonic)
		assert.Equal(entry.arity, desc.Arity, entry.mnemonic)
		assert.Equal(entry.roles, desc.Roles, entry.mnemonic)
	}

	_, ok := Lookup("nop")
	assert.False(ok)
	_, ok = Lookup("")
	assert.False(ok)
}

func TestLookupImplied(t *testing.T) {
	assert := assert.New(t)

	desc, ok := Lookup("mfhi")
	assert.True(ok)
	assert.Equal(1, desc.Arity)
	assert.Equal([]string{"$hi"}, desc.Implied)
	assert.Equal(2, len(desc.Roles))

	desc, ok = Lookup("mflo")
	assert.True(ok)
	assert.Equal([]string{"$lo"}, desc.Implied)

	// Descriptors are copies.
	desc.Implied[0] = "$t0"
	desc, _ = Lookup("mflo")
	assert.Equal([]string{"$lo"}, desc.Implied)
}

func TestCatalogShape(t *testing.T) {
	assert := assert.New(t)

	for _, name := range Mnemonics() {
		desc, ok := Lookup(name)
		assert.True(ok, name)
		assert.Equal(desc.Arity+len(desc.Implied), len(desc.Roles), name)
	}
}

func TestWireNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Multiplication", ACTION_MULTIPLY.String())
	assert.Equal("Immidiate", KIND_IMMEDIATE.String())
	assert.Equal("InequaltoZero", KIND_NOT_EQUAL_ZERO.String())

	for action := ACTION_LOAD; action <= ACTION_OS; action++ {
		parsed, ok := ParseAction(action.String())
		assert.True(ok)
		assert.Equal(action, parsed)
	}

	for kind := KIND_INTEGER; kind <= KIND_INTERRUPT; kind++ {
		parsed, ok := ParseKind(kind.String())
		assert.True(ok)
		assert.Equal(kind, parsed)
	}

	_, ok := ParseAction("Jump")
	assert.False(ok)
	_, ok = ParseKind("Load")
	assert.False(ok)
}

func TestLookupKind(t *testing.T) {
	assert := assert.New(t)

	name, desc, ok := LookupKind(ACTION_OS, KIND_INTERRUPT, 0)
	assert.True(ok)
	assert.Equal("syscall", name)
	assert.Equal(0, desc.Arity)

	name, desc, ok = LookupKind(ACTION_MOVE, KIND_REGISTER, 1)
	assert.True(ok)
	assert.Equal("mfhi", name)
	assert.Equal([]string{"$hi"}, desc.Implied)

	name, _, ok = LookupKind(ACTION_BRANCH, KIND_EQUAL_ZERO, 2)
	assert.True(ok)
	assert.Equal("beqz", name)

	_, _, ok = LookupKind(ACTION_ADD, KIND_REGISTER, 0)
	assert.False(ok)
	_, _, ok = LookupKind(ACTION_OS, KIND_JUMP, 0)
	assert.False(ok)
}
