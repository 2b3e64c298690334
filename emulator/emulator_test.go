package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/lexer"
	"github.com/ezrec/mipsim/store"
	"github.com/ezrec/mipsim/vm"
)

func source(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n"))
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.NotNil(emu.Program)
	assert.Equal(0, emu.LineNo())

	defines := map[string]string{}
	for name, value := range emu.Defines() {
		defines[name] = value
	}
	assert.Equal("10", defines["SYS_EXIT"])
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	emu := NewEmulator(out)

	program := []string{
		".text",
		"main:",
		"li $t0 7",
		"li $v0 SYS_PRINT_INT",
		"move $a0 $t0",
		"syscall",
	}

	_, err := emu.Assemble(source(program...))
	if !assert.NoError(err) {
		return
	}
	assert.NoError(emu.Reset())

	for lineno := 3; lineno <= 6; lineno++ {
		assert.Equal(lineno, emu.LineNo(), program[lineno-1])
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal("7", out.String())
	assert.Equal(4, emu.Machine.Ticks)
}

func TestEmulatorDefine(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	emu := NewEmulator(out)
	emu.Define("ANSWER", "21")

	_, err := emu.Assemble(source(
		".text",
		"main:",
		"li $a0 $(ANSWER*2)",
		"li $v0 SYS_PRINT_INT",
		"syscall",
		"li $v0 SYS_EXIT",
		"syscall",
	))
	if !assert.NoError(err) {
		return
	}

	assert.NoError(emu.Run())
	assert.Equal("42", out.String())
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	built := NewEmulator(nil)
	prog, err := built.Assemble(source(
		".data",
		`msg: .asciiz "stored"`,
		".text",
		"main: li $v0 4",
		"la $a0 msg",
		"syscall",
	))
	if !assert.NoError(err) {
		return
	}

	data, err := store.Marshal(prog, store.FORMAT_YAML)
	if !assert.NoError(err) {
		return
	}
	decoded, err := store.Unmarshal(data, store.FORMAT_YAML)
	if !assert.NoError(err) {
		return
	}

	out := &bytes.Buffer{}
	emu := NewEmulator(out)
	emu.Load(decoded)
	assert.NoError(emu.Run())
	assert.Equal("stored", out.String())
}

func TestEmulatorErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		lines []string
		code  int
	}{
		{[]string{".text", "main:", `li $t0 "open`}, EXIT_LEXICAL},
		{[]string{".text", "main:", "bogus $t0"}, EXIT_SYNTAX},
		{[]string{".text", "start:", "li $t0 1"}, EXIT_RUNTIME},
		{[]string{".text", "main:", "li $t0 1", "div $t0 $zero"}, EXIT_RUNTIME},
	}

	for _, entry := range table {
		emu := NewEmulator(nil)
		_, err := emu.Assemble(source(entry.lines...))
		if err == nil {
			err = emu.Run()
		}
		assert.Error(err, entry.lines)
		assert.Equal(entry.code, ExitCode(err), entry.lines)
	}
}

func TestExitCode(t *testing.T) {
	assert := assert.New(t)

	_, err := store.Open(fstest.MapFS{}, "missing.out")

	table := []struct {
		err  error
		code int
	}{
		{nil, EXIT_OK},
		{err, EXIT_LOAD},
		{errors.New("other"), EXIT_LOAD},
		{&lexer.ErrLexical{LineNo: 1, Err: lexer.ErrQuoteUnterminated}, EXIT_LEXICAL},
		{&asm.ErrSyntax{LineNo: 1, Err: asm.ErrInstructionInvalid}, EXIT_SYNTAX},
		{&vm.ErrRuntime{LineNo: 1, Err: vm.ErrPcRange}, EXIT_RUNTIME},
		{errors.Join(errors.New("context"), &vm.ErrRuntime{Err: vm.ErrDivideByZero}), EXIT_RUNTIME},
	}

	for _, entry := range table {
		assert.Equal(entry.code, ExitCode(entry.err), entry.err)
	}
}

func TestEmulatorDefineString(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	assert.NoError(emu.DefineString(" COUNT = 3 "))
	assert.ErrorIs(emu.DefineString("COUNT"), lexer.ErrDefineInvalid)
	assert.ErrorIs(emu.DefineString("=3"), lexer.ErrDefineInvalid)

	defines := map[string]string{}
	for name, value := range emu.Defines() {
		defines[name] = value
	}
	assert.Equal("3", defines["COUNT"])
}
