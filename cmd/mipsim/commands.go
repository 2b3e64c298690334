package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/emulator"
	mipsio "github.com/ezrec/mipsim/io"
	"github.com/ezrec/mipsim/store"
	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var ErrArguments = errors.New(f("exactly one program file is required"))

var RunCommand = &cli.Command{
	Name:      "run",
	Usage:     "Assemble and run a source, or run a saved program",
	ArgsUsage: "FILE",
	Action:    runAction,
	Flags: []cli.Flag{
		DefineFlag,
		OutputFlag,
		SaveFlag,
		FormatFlag,
		DumpRegistersFlag,
		SilentFlag,
		DetailsFlag,
	},
}

var BuildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Assemble a source and save the resolved program",
	ArgsUsage: "FILE",
	Action:    buildAction,
	Flags: []cli.Flag{
		DefineFlag,
		&cli.StringFlag{
			Name:    OutputFlag.Name,
			Aliases: OutputFlag.Aliases,
			Usage:   "Saved program path. Default is FILE with a " + store.OUTPUT_EXT + " extension",
		},
		FormatFlag,
		SilentFlag,
		DetailsFlag,
	},
}

var RegsCommand = &cli.Command{
	Name:      "regs",
	Usage:     "Print the register file, after running FILE if given",
	ArgsUsage: "[FILE]",
	Action:    regsAction,
	Flags: []cli.Flag{
		DefineFlag,
	},
}

// isProgram is true for the extensions of saved programs.
func isProgram(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case store.OUTPUT_EXT, ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// newEmulator creates an emulator configured from the command flags.
func newEmulator(ctx *cli.Context, output io.Writer) (emu *emulator.Emulator, err error) {
	emu = emulator.NewEmulator(output)
	emu.Verbose = ctx.Bool(VerboseFlag.Name)

	for _, define := range ctx.StringSlice(DefineFlag.Name) {
		err = emu.DefineString(define)
		if err != nil {
			return
		}
	}

	return
}

// load assembles a source, or opens a saved program, and makes it current.
func load(emu *emulator.Emulator, name string) (prog *asm.Program, err error) {
	dir, base := filepath.Split(name)
	if len(dir) == 0 {
		dir = "."
	}
	filesys := os.DirFS(dir)

	if isProgram(base) {
		prog, err = store.Open(filesys, base)
		if err != nil {
			return
		}
		emu.Load(prog)
		return
	}

	data, err := store.Source(filesys, base)
	if err != nil {
		return
	}

	return emu.Assemble(strings.NewReader(string(data)))
}

// save writes the program, with the --format flag overriding the extension.
func save(ctx *cli.Context, name string, prog *asm.Program) (err error) {
	format := store.FormatOf(name)
	if text := ctx.String(FormatFlag.Name); len(text) != 0 {
		format, err = store.ParseFormat(text)
		if err != nil {
			err = &store.ErrResource{Op: "write", Path: name, Err: err}
			return
		}
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		err = &store.ErrResource{Op: "write", Path: name, Err: err}
		return
	}

	// Rooted at the volume, so that Save creates any missing directories.
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel := filepath.ToSlash(strings.TrimPrefix(abs, root))

	return store.Save(store.DirFS(root), rel, prog, format)
}

// openSink opens the program output. Its flush is registered to run at exit.
func openSink(name string) (sink mipsio.Sink, err error) {
	file := os.Stdout
	if name != "-" {
		file, err = os.Create(name)
		if err != nil {
			err = &store.ErrResource{Op: "create", Path: name, Err: err}
			return
		}
	}

	sink = mipsio.NewSink(file)
	atexit.Register(func() {
		sink.Flush()
		if file != os.Stdout {
			file.Close()
		}
	})

	return
}

// report prints err as the --silent and --details flags ask.
func report(ctx *cli.Context, err error) error {
	if err == nil || ctx.Bool(SilentFlag.Name) {
		return err
	}

	message := err.Error()
	var res *store.ErrResource
	if !ctx.Bool(DetailsFlag.Name) && errors.As(err, &res) {
		message = res.Summary()
	}

	fmt.Fprintf(ctx.App.ErrWriter, "%v: %v\n", ctx.App.Name, message)
	return err
}

func runAction(ctx *cli.Context) (err error) {
	defer func() {
		err = report(ctx, err)
	}()

	if ctx.NArg() != 1 {
		err = ErrArguments
		return
	}
	name := ctx.Args().First()

	sink, err := openSink(ctx.String(OutputFlag.Name))
	if err != nil {
		return
	}

	emu, err := newEmulator(ctx, sink)
	if err != nil {
		return
	}

	prog, err := load(emu, name)
	if err != nil {
		return
	}

	if path := ctx.String(SaveFlag.Name); len(path) != 0 {
		err = save(ctx, path, prog)
		if err != nil {
			return
		}
	}

	err = emu.Run()
	sink.Flush()

	if ctx.Bool(DumpRegistersFlag.Name) {
		fmt.Fprintln(ctx.App.Writer, registerTable(emu.Machine))
	}

	return
}

func buildAction(ctx *cli.Context) (err error) {
	defer func() {
		err = report(ctx, err)
	}()

	if ctx.NArg() != 1 {
		err = ErrArguments
		return
	}
	name := ctx.Args().First()

	emu, err := newEmulator(ctx, nil)
	if err != nil {
		return
	}

	prog, err := load(emu, name)
	if err != nil {
		return
	}

	output := ctx.String(OutputFlag.Name)
	if len(output) == 0 {
		output = store.OutputName(name)
	}

	return save(ctx, output, prog)
}

func regsAction(ctx *cli.Context) (err error) {
	defer func() {
		err = report(ctx, err)
	}()

	if ctx.NArg() > 1 {
		err = ErrArguments
		return
	}

	emu, err := newEmulator(ctx, nil)
	if err != nil {
		return
	}

	if ctx.NArg() == 1 {
		_, err = load(emu, ctx.Args().First())
		if err == nil {
			err = emu.Run()
		}
	}

	fmt.Fprintln(ctx.App.Writer, registerTable(emu.Machine))
	return
}
