package emulator_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/emulator"
	"github.com/ezrec/mipsim/vm"
)

var _ = Describe("Emulator", func() {
	var (
		out *bytes.Buffer
		emu *emulator.Emulator
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		emu = emulator.NewEmulator(out)
	})

	execute := func(lines ...string) error {
		_, err := emu.Assemble(strings.NewReader(strings.Join(lines, "\n")))
		if err != nil {
			return err
		}
		return emu.Run()
	}

	Context("when printing a string", func() {
		It("should write the data payload and exit cleanly", func() {
			err := execute(
				".data",
				`msg: .ASCII "Hi"`,
				".text",
				"main:",
				"li $v0 4",
				"la $a0 msg",
				"syscall",
				"li $v0 10",
				"syscall",
			)

			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("Hi"))
			Expect(emulator.ExitCode(err)).To(Equal(emulator.EXIT_OK))
			Expect(emu.Machine.Running).To(BeFalse())
		})
	})

	Context("when adding registers", func() {
		It("should print the sum", func() {
			err := execute(
				".text",
				"main:",
				"li $t0 5",
				"li $t1 3",
				"add $t2 $t0 $t1",
				"li $v0 1",
				"move $a0 $t2",
				"syscall",
			)

			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("8"))

			value, err := emu.Machine.Register.Number("$t2")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(int32(8)))
		})
	})

	Context("when branching on equality", func() {
		program := func(second string) []string {
			return []string{
				".text",
				"main:",
				"li $t0 1",
				"li $t1 " + second,
				"beq $t0 $t1 skip",
				"li $a0 7",
				"li $v0 1",
				"syscall",
				"skip:",
				"li $v0 10",
				"syscall",
			}
		}

		It("should skip when the registers are equal", func() {
			err := execute(program("1")...)

			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(BeEmpty())
		})

		It("should fall through when the registers differ", func() {
			err := execute(program("2")...)

			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("7"))
		})
	})

	Context("when an instruction has too few operands", func() {
		It("should report a syntax error on its line", func() {
			prog, err := emu.Assemble(strings.NewReader(strings.Join([]string{
				".text",
				"main:",
				"add $t0 $t1",
			}, "\n")))

			Expect(prog).To(BeNil())
			Expect(err).To(HaveOccurred())

			var syn *asm.ErrSyntax
			Expect(errors.As(err, &syn)).To(BeTrue())
			Expect(syn.LineNo).To(Equal(3))
			Expect(emulator.ExitCode(err)).To(Equal(emulator.EXIT_SYNTAX))
		})
	})

	Context("when dividing by zero", func() {
		It("should fault with the source line", func() {
			err := execute(
				".text",
				"main:",
				"li $t0 4",
				"div $t0 $zero",
			)

			Expect(err).To(MatchError(vm.ErrDivideByZero))

			var run *vm.ErrRuntime
			Expect(errors.As(err, &run)).To(BeTrue())
			Expect(run.LineNo).To(Equal(4))
			Expect(emulator.ExitCode(err)).To(Equal(emulator.EXIT_RUNTIME))
		})
	})
})
