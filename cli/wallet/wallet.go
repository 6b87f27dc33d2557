// Package wallet implements wallet query and maintenance commands.
package wallet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hazeltree/chiactl/cli/options"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
	"github.com/hazeltree/chiactl/pkg/encoding/mojo"
	"github.com/urfave/cli"
)

// NewCommands returns the 'wallet' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "wallet",
		Usage: "query and manage the wallet",
		Subcommands: []cli.Command{
			{
				Name:      "height",
				Usage:     "print the current chain height",
				UsageText: "wallet height",
				Action:    printHeight,
				Flags:     options.RPC,
			},
			{
				Name:      "network",
				Usage:     "print the network the wallet is connected to",
				UsageText: "wallet network",
				Action:    printNetwork,
				Flags:     options.RPC,
			},
			{
				Name:      "sync",
				Usage:     "print the wallet synchronization state",
				UsageText: "wallet sync",
				Action:    printSyncStatus,
				Flags:     options.RPC,
			},
			{
				Name:      "timestamp",
				Usage:     "print the timestamp of the block at the given height",
				UsageText: "wallet timestamp --height <h> [--local]",
				Action:    printTimestamp,
				Flags: append([]cli.Flag{
					cli.UintFlag{
						Name:  "height",
						Usage: "Block height to look up",
					},
					cli.BoolFlag{
						Name:  "local, l",
						Usage: "Convert the timestamp to the local time zone",
					},
				}, options.RPC...),
			},
			{
				Name:      "list",
				Usage:     "list wallets of the active key",
				UsageText: "wallet list [--type <n>]",
				Action:    listWallets,
				Flags: append([]cli.Flag{
					cli.IntFlag{
						Name:  "type, t",
						Usage: "Only show wallets of the given type",
						Value: -1,
					},
				}, options.RPC...),
			},
			{
				Name:      "cat-track",
				Usage:     "register an existing CAT for tracking",
				UsageText: "wallet cat-track --asset-id <id> [--name <name>]",
				Action:    trackCAT,
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "asset-id",
						Usage: "Asset id of the CAT to track",
					},
					cli.StringFlag{
						Name:  "name, n",
						Usage: "Wallet name for the tracked CAT",
					},
				}, options.RPC...),
			},
			{
				Name:      "push-tx",
				Usage:     "submit a signed spend bundle from a JSON file",
				UsageText: "wallet push-tx <file.json>",
				Action:    pushTX,
				Flags:     options.RPC,
			},
			{
				Name:      "auto-claim",
				Usage:     "show or change auto-claim settings",
				UsageText: "wallet auto-claim [--enable|--disable] [--tx-fee <mojo>] [--min-amount <mojo>] [--batch-size <n>]",
				Action:    autoClaim,
				Flags: append([]cli.Flag{
					cli.BoolFlag{Name: "enable", Usage: "Turn auto-claim on"},
					cli.BoolFlag{Name: "disable", Usage: "Turn auto-claim off"},
					cli.Uint64Flag{Name: "tx-fee", Usage: "Fee per auto-claim transaction, in mojo"},
					cli.Uint64Flag{Name: "min-amount", Usage: "Smallest claimable amount, in mojo"},
					cli.UintFlag{Name: "batch-size", Usage: "Coins claimed per transaction", Value: 50},
				}, options.RPC...),
			},
		},
	}}
}

func printHeight(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	height, err := c.GetHeightInfo()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, height)
	return nil
}

func printNetwork(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	ni, err := c.GetNetworkInfo()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "%s (prefix %s)\n", ni.NetworkName, ni.NetworkPrefix)
	return nil
}

func printSyncStatus(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	st, err := c.GetSyncStatus()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	switch {
	case st.Synced:
		fmt.Fprintln(ctx.App.Writer, "synced")
	case st.Syncing:
		fmt.Fprintln(ctx.App.Writer, "syncing")
	default:
		fmt.Fprintln(ctx.App.Writer, "not synced")
	}
	return nil
}

func printTimestamp(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	height := uint32(ctx.Uint("height"))
	if ctx.Bool("local") {
		ts, err := c.GetTimeForHeight(height)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(ctx.App.Writer, ts.Format("2006-01-02 15:04:05 MST"))
		return nil
	}
	ts, err := c.GetTimestampForHeight(height)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, ts)
	return nil
}

func listWallets(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	var (
		wallets []result.Wallet
		err     error
	)
	if typ := ctx.Int("type"); typ >= 0 {
		wallets, err = c.GetWalletsByType(uint8(typ))
	} else {
		wallets, err = c.GetWallets()
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, w := range wallets {
		fmt.Fprintf(ctx.App.Writer, "%d\t%d\t%s\n", w.ID, w.Type, w.Name)
	}
	return nil
}

func trackCAT(ctx *cli.Context) error {
	assetID := ctx.String("asset-id")
	if assetID == "" {
		return cli.NewExitError("asset id is mandatory and should be passed using the --asset-id flag", 1)
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	id, err := c.CreateCATWallet(assetID, ctx.String("name"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Tracking CAT in wallet %d\n", id)
	return nil
}

func pushTX(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("spend bundle file is mandatory", 1)
	}
	data, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	var bundle json.RawMessage
	if err := json.Unmarshal(data, &bundle); err != nil {
		return cli.NewExitError(fmt.Errorf("invalid spend bundle: %w", err), 1)
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	status, err := c.PushTX(bundle)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, status)
	return nil
}

func autoClaim(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	var (
		settings *result.AutoClaimSettings
		err      error
	)
	if ctx.Bool("enable") || ctx.Bool("disable") {
		settings, err = c.SetAutoClaim(result.AutoClaimSettings{
			Enabled:   ctx.Bool("enable"),
			TxFee:     ctx.Uint64("tx-fee"),
			MinAmount: ctx.Uint64("min-amount"),
			BatchSize: uint16(ctx.Uint("batch-size")),
		})
	} else {
		settings, err = c.GetAutoClaim()
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "Enabled: %t\n", settings.Enabled)
	fmt.Fprintf(w, "Fee: %s XCH\n", mojo.MojoToXCH(settings.TxFee))
	fmt.Fprintf(w, "Min amount: %s XCH\n", mojo.MojoToXCH(settings.MinAmount))
	fmt.Fprintf(w, "Batch size: %d\n", settings.BatchSize)
	return nil
}
