package main

import (
	"log"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/ezrec/mipsim/translate"
)

var (
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Log each tokenized line and executed instruction",
	}
	LangFlag = &cli.StringFlag{
		Name:  "lang",
		Usage: "Language of diagnostics, as a BCP 47 tag. Default is the host locale",
	}
	DefineFlag = &cli.StringSliceFlag{
		Name:    "define",
		Aliases: []string{"D"},
		Usage:   "Predefine an assembler equate, as NAME=VALUE",
	}
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Program output file. Default is stdout",
		Value:   "-",
	}
	SaveFlag = &cli.StringFlag{
		Name:  "save",
		Usage: "Save the resolved program to this path before running",
	}
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Saved program format, 'json' or 'yaml'. Default is by extension",
	}
	DumpRegistersFlag = &cli.BoolFlag{
		Name:  "dump-registers",
		Usage: "Print the register file after the program ends",
	}
	SilentFlag = &cli.BoolFlag{
		Name:  "silent",
		Usage: "Do not report errors, only set the exit code",
	}
	DetailsFlag = &cli.BoolFlag{
		Name:  "details",
		Usage: "Report errors with their full cause",
	}
)

// setup applies the global flags.
func setup(ctx *cli.Context) (err error) {
	lang := ctx.String(LangFlag.Name)
	if len(lang) != 0 {
		var tag language.Tag
		tag, err = language.Parse(lang)
		if err != nil {
			return
		}
		translate.SetLanguage(tag)
	}

	if !ctx.Bool(VerboseFlag.Name) {
		return
	}

	log.SetFlags(log.Lmicroseconds)
	log.SetPrefix("mipsim: ")
	return
}
