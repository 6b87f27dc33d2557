// Package app assembles the chiactl CLI application.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hazeltree/chiactl/cli/keys"
	"github.com/hazeltree/chiactl/cli/offer"
	"github.com/hazeltree/chiactl/cli/util"
	"github.com/hazeltree/chiactl/cli/wallet"
	"github.com/hazeltree/chiactl/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "chiactl\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a chiactl instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "chiactl"
	ctl.Version = config.Version
	ctl.Usage = "typed command-line client for the Chia wallet RPC"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, keys.NewCommands()...)
	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	ctl.Commands = append(ctl.Commands, offer.NewCommands()...)
	ctl.Commands = append(ctl.Commands, util.NewCommands()...)
	return ctl
}
