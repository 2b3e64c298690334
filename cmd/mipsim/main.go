// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"os"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/mipsim/emulator"
)

func main() {
	app := NewApp()

	err := app.RunContext(context.Background(), os.Args)

	atexit.Exit(emulator.ExitCode(err))
}

// NewApp creates the command line application.
func NewApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "mipsim"
	app.Usage = "MIPS subset assembler and interpreter"
	app.Description = "Assembles .s sources, runs them or saves the resolved program."
	app.Flags = []cli.Flag{
		VerboseFlag,
		LangFlag,
	}
	app.Before = setup
	app.Commands = []*cli.Command{
		RunCommand,
		BuildCommand,
		RegsCommand,
	}

	return
}
