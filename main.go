package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaanek/abienc/commands"
	"github.com/jaanek/abienc/flags"
	"github.com/jaanek/abienc/ui"
	"github.com/urfave/cli"
)

var (
	app = NewApp("abi value encoder command line interface")
)

type Command func(term ui.Screen, ctx *cli.Context) error

func init() {
	app.Flags = []cli.Flag{}
	app.Commands = []cli.Command{
		{
			Name:    "pack-values",
			Aliases: []string{"pack"},
			Usage:   "packs typed argument values into abi hex encoding",
			Action:  runCommand(commands.PackValuesCommand),
			Flags: []cli.Flag{
				flags.Verbose,
				flags.Plain,
				flags.TypesParam,
				flags.Param0,
				flags.Param1,
				flags.Param2,
				flags.Param3,
				flags.Param4,
				flags.Param5,
				flags.Param6,
				flags.Param7,
				flags.Param8,
				flags.Param9,
			},
		},
		{
			Name:    "parse-type",
			Aliases: []string{"type"},
			Usage:   "parses an abi type signature and prints its canonical shape",
			Action:  runCommand(commands.ParseTypeCommand),
			Flags: []cli.Flag{
				flags.Verbose,
				flags.Plain,
				flags.TypesParam,
			},
		},
	}
}

func runCommand(cmd Command) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		term := ui.NewTerminal(ctx.Bool(flags.Verbose.Name))
		err := cmd(term, ctx)
		if err != nil {
			term.Error(err)
		}
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}

// NewApp creates an app with sane defaults.
func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = usage
	return app
}
