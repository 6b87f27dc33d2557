// Package util contains various helper commands.
package util

import (
	"fmt"
	"strconv"

	"github.com/hazeltree/chiactl/pkg/encoding/mojo"
	"github.com/urfave/cli"
)

var catFlag = cli.BoolFlag{
	Name:  "cat",
	Usage: "Use CAT precision (3 decimal places) instead of XCH (12)",
}

// NewCommands returns util commands for the chiactl CLI.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "util",
		Usage: "various helper commands",
		Subcommands: []cli.Command{
			{
				Name:      "to-mojo",
				Usage:     "convert a decimal asset amount to mojo",
				UsageText: "util to-mojo [--cat] <amount>",
				Action:    toMojo,
				Flags:     []cli.Flag{catFlag},
			},
			{
				Name:      "from-mojo",
				Usage:     "convert a mojo amount to a decimal asset amount",
				UsageText: "util from-mojo [--cat] <amount>",
				Action:    fromMojo,
				Flags:     []cli.Flag{catFlag},
			},
		},
	}}
}

func toMojo(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("amount is mandatory", 1)
	}
	conv := mojo.XCHToMojo
	if ctx.Bool("cat") {
		conv = mojo.CATToMojo
	}
	m, err := conv(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, m)
	return nil
}

func fromMojo(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("amount is mandatory", 1)
	}
	m, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	conv := mojo.MojoToXCH
	if ctx.Bool("cat") {
		conv = mojo.MojoToCAT
	}
	fmt.Fprintln(ctx.App.Writer, conv(m))
	return nil
}
