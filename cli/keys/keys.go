// Package keys implements keychain management commands.
package keys

import (
	"fmt"
	"strings"

	"github.com/hazeltree/chiactl/cli/input"
	"github.com/hazeltree/chiactl/cli/options"
	"github.com/urfave/cli"
)

var fingerprintFlag = cli.UintFlag{
	Name:  "fingerprint, f",
	Usage: "Fingerprint of the key to operate on",
}

// NewCommands returns the 'keys' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "keys",
		Usage: "manage the wallet keychain",
		Subcommands: []cli.Command{
			{
				Name:      "generate",
				Usage:     "generate a new 24-word mnemonic (the key is not added)",
				UsageText: "keys generate",
				Action:    generateMnemonic,
				Flags:     options.RPC,
			},
			{
				Name:      "add",
				Usage:     "add a key from a mnemonic to the keychain",
				UsageText: "keys add [--mnemonic \"word1 word2 ...\"]",
				Description: `Adds a key derived from a 12- or 24-word mnemonic. Without the --mnemonic
   flag the words are read interactively with echo disabled.`,
				Action: addKey,
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "mnemonic, m",
						Usage: "Space-separated mnemonic words",
					},
				}, options.RPC...),
			},
			{
				Name:      "list",
				Usage:     "list fingerprints of all keys in the keychain",
				UsageText: "keys list",
				Action:    listKeys,
				Flags:     options.RPC,
			},
			{
				Name:      "export",
				Usage:     "show private key material for a fingerprint",
				UsageText: "keys export --fingerprint <fp>",
				Action:    exportKey,
				Flags:     append([]cli.Flag{fingerprintFlag}, options.RPC...),
			},
			{
				Name:      "check-delete",
				Usage:     "check whether a key is safe to delete",
				UsageText: "keys check-delete --fingerprint <fp>",
				Action:    checkDeleteKey,
				Flags:     append([]cli.Flag{fingerprintFlag}, options.RPC...),
			},
			{
				Name:      "delete",
				Usage:     "delete a key from the keychain",
				UsageText: "keys delete --fingerprint <fp>",
				Action:    deleteKey,
				Flags:     append([]cli.Flag{fingerprintFlag}, options.RPC...),
			},
			{
				Name:      "login",
				Usage:     "select the active key by fingerprint",
				UsageText: "keys login --fingerprint <fp>",
				Action:    logIn,
				Flags:     append([]cli.Flag{fingerprintFlag}, options.RPC...),
			},
			{
				Name:      "fingerprint",
				Usage:     "show the fingerprint of the active key",
				UsageText: "keys fingerprint",
				Action:    loggedInFingerprint,
				Flags:     options.RPC,
			},
		},
	}}
}

func generateMnemonic(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	mnemonic, err := c.GenerateMnemonic()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, strings.Join(mnemonic, " "))
	return nil
}

func addKey(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	mnemonic := ctx.String("mnemonic")
	if mnemonic == "" {
		var err error
		mnemonic, err = input.ReadSecret(ctx.App.Writer, "Enter mnemonic > ")
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	fp, err := c.AddKey(strings.Fields(mnemonic))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Added key with fingerprint %d\n", fp)
	return nil
}

func listKeys(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	fps, err := c.GetPublicKeys()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, fp := range fps {
		fmt.Fprintln(ctx.App.Writer, fp)
	}
	return nil
}

func exportKey(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	sk, err := c.GetPrivateKey(uint32(ctx.Uint("fingerprint")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "Fingerprint: %d\n", sk.Fingerprint)
	fmt.Fprintf(w, "Master public key: %s\n", sk.PK)
	fmt.Fprintf(w, "Farmer public key: %s\n", sk.FarmerPK)
	fmt.Fprintf(w, "Pool public key: %s\n", sk.PoolPK)
	fmt.Fprintf(w, "Master private key: %s\n", sk.SK)
	fmt.Fprintf(w, "Seed: %s\n", sk.Seed)
	return nil
}

func checkDeleteKey(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	info, err := c.CheckDeleteKey(uint32(ctx.Uint("fingerprint")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "Fingerprint: %d\n", info.Fingerprint)
	fmt.Fprintf(w, "Used for farmer rewards: %t\n", info.UsedForFarmerRewards)
	fmt.Fprintf(w, "Used for pool rewards: %t\n", info.UsedForPoolRewards)
	fmt.Fprintf(w, "Has balance: %t\n", info.WalletBalance)
	return nil
}

func deleteKey(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	fp := uint32(ctx.Uint("fingerprint"))
	if err := c.DeleteKey(fp); err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Deleted key %d\n", fp)
	return nil
}

func logIn(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	fp, err := c.LogIn(uint32(ctx.Uint("fingerprint")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Logged in as %d\n", fp)
	return nil
}

func loggedInFingerprint(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	fp, err := c.GetLoggedInFingerprint()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, fp)
	return nil
}
