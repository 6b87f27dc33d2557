// Package offer implements commands for creating and managing trade offers.
package offer

import (
	"fmt"
	"os"
	"strings"

	"github.com/hazeltree/chiactl/cli/options"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
	"github.com/hazeltree/chiactl/pkg/encoding/mojo"
	"github.com/hazeltree/chiactl/pkg/offer"
	"github.com/hazeltree/chiactl/pkg/rpcclient"
	"github.com/urfave/cli"
)

var tradeIDFlag = cli.StringFlag{
	Name:  "id",
	Usage: "Trade id of the offer",
}

// NewCommands returns the 'offer' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "offer",
		Usage: "create and manage trade offers",
		Subcommands: []cli.Command{
			{
				Name:      "list",
				Usage:     "list the wallet's trade records",
				UsageText: "offer list [--include-completed] [--exclude-mine] [--exclude-taken] [--reverse]",
				Action:    listOffers,
				Flags: append([]cli.Flag{
					cli.BoolFlag{Name: "include-completed", Usage: "Include completed trades"},
					cli.BoolFlag{Name: "exclude-mine", Usage: "Exclude offers made by this wallet"},
					cli.BoolFlag{Name: "exclude-taken", Usage: "Exclude offers taken by this wallet"},
					cli.BoolFlag{Name: "reverse", Usage: "Newest first"},
					cli.UintFlag{Name: "start", Usage: "First record index"},
					cli.UintFlag{Name: "end", Usage: "Record index to stop at", Value: 50},
				}, options.RPC...),
			},
			{
				Name:      "get",
				Usage:     "show a single trade record with its offer string",
				UsageText: "offer get --id <trade-id>",
				Action:    getOffer,
				Flags:     append([]cli.Flag{tradeIDFlag}, options.RPC...),
			},
			{
				Name:      "cancel",
				Usage:     "cancel an offer",
				UsageText: "offer cancel --id <trade-id> [--fee <xch>] [--secure]",
				Action:    cancelOffer,
				Flags: append([]cli.Flag{
					tradeIDFlag,
					cli.StringFlag{Name: "fee", Usage: "Fee in XCH for the on-chain cancellation"},
					cli.BoolFlag{Name: "secure", Usage: "Cancel on-chain by spending the offered coins"},
				}, options.RPC...),
			},
			{
				Name:      "summary",
				Usage:     "inspect an offer file without accepting it",
				UsageText: "offer summary <file>",
				Action:    offerSummary,
				Flags:     options.RPC,
			},
			{
				Name:      "create",
				Usage:     "build and submit a new offer",
				UsageText: "offer create --offer ASSET:AMOUNT [--request ASSET:AMOUNT] [--fee <xch>] ...",
				Description: `Builds an offer from one-sided terms and submits it to the wallet. Every
   --offer and --request takes ASSET:AMOUNT where ASSET is "xch", a CAT asset
   id or an NFT id (bech32, no amount), e.g.:

       offer create --offer xch:0.5 --request a628c1...9e3a:205 --expire-minutes 60
       offer create --offer nft1s3y... --request xch:1.25

   XCH amounts carry up to 12 decimal places, CAT amounts up to 3.`,
				Action: createOffer,
				Flags: append([]cli.Flag{
					cli.StringSliceFlag{Name: "offer, o", Usage: "Asset and amount given up, can be repeated"},
					cli.StringSliceFlag{Name: "request, r", Usage: "Asset and amount wanted, can be repeated"},
					cli.StringFlag{Name: "fee", Usage: "Fee in XCH on top of the trade"},
					cli.BoolFlag{Name: "validate-only", Usage: "Dry-run validation instead of a real offer"},
					cli.UintFlag{Name: "min-height", Usage: "Height before which the offer can't be taken"},
					cli.UintFlag{Name: "max-height", Usage: "Height after which the offer expires"},
					cli.Uint64Flag{Name: "min-time", Usage: "Unix time before which the offer can't be taken"},
					cli.Uint64Flag{Name: "max-time", Usage: "Unix time after which the offer expires"},
					cli.UintFlag{Name: "tradable-blocks", Usage: "Make the offer takeable this many blocks from now"},
					cli.UintFlag{Name: "expire-blocks", Usage: "Expire the offer this many blocks from now"},
					cli.UintFlag{Name: "tradable-minutes", Usage: "Make the offer takeable this many minutes from now"},
					cli.UintFlag{Name: "expire-minutes", Usage: "Expire the offer this many minutes from now"},
				}, options.RPC...),
			},
		},
	}}
}

func listOffers(ctx *cli.Context) error {
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	records, err := c.GetAllOffers(rpcFilter(ctx))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for i := range records {
		printRecord(ctx, &records[i])
	}
	return nil
}

func getOffer(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		return cli.NewExitError("trade id is mandatory and should be passed using the --id flag", 1)
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	record, err := c.GetOffer(id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	printRecord(ctx, record)
	return nil
}

func cancelOffer(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		return cli.NewExitError("trade id is mandatory and should be passed using the --id flag", 1)
	}
	var (
		fee uint64
		err error
	)
	if s := ctx.String("fee"); s != "" {
		fee, err = mojo.XCHToMojo(s)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	if err := c.CancelOffer(id, fee, ctx.Bool("secure")); err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Cancelled %s\n", id)
	return nil
}

func offerSummary(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("offer file is mandatory", 1)
	}
	data, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	summary, err := c.GetOfferSummary(strings.TrimSpace(string(data)))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w := ctx.App.Writer
	fmt.Fprintln(w, "Offered:")
	printAmounts(ctx, summary.Offered)
	fmt.Fprintln(w, "Requested:")
	printAmounts(ctx, summary.Requested)
	fmt.Fprintf(w, "Fees: %s XCH\n", mojo.MojoToXCH(summary.Fees))
	return nil
}

func createOffer(ctx *cli.Context) error {
	offered := ctx.StringSlice("offer")
	requested := ctx.StringSlice("request")
	if len(offered) == 0 && len(requested) == 0 {
		return cli.NewExitError("at least one --offer or --request term is required", 1)
	}
	c, exitErr := options.GetRPCClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	b := offer.New(c)
	for _, term := range offered {
		if err := applyTerm(b, term, false); err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	for _, term := range requested {
		if err := applyTerm(b, term, true); err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	if err := applyBounds(ctx, b); err != nil {
		return cli.NewExitError(err, 1)
	}
	if s := ctx.String("fee"); s != "" {
		fee, err := mojo.XCHToMojo(s)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		b.SetFee(fee)
	}
	if ctx.Bool("validate-only") {
		b.ValidateOnly()
	}
	record, err := b.Create()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	printRecord(ctx, record)
	return nil
}

// applyTerm puts one ASSET:AMOUNT term on the chosen side of the builder.
func applyTerm(b *offer.Builder, term string, request bool) error {
	if strings.HasPrefix(term, "nft") {
		if request {
			return b.RequestNFT(term)
		}
		return b.OfferNFT(term)
	}
	asset, amount, found := strings.Cut(term, ":")
	if !found {
		return fmt.Errorf("invalid term %q, expected ASSET:AMOUNT", term)
	}
	if asset == "xch" || asset == offer.NativeAssetID {
		m, err := mojo.XCHToMojo(amount)
		if err != nil {
			return err
		}
		if request {
			return b.RequestXCH(m)
		}
		return b.OfferXCH(m)
	}
	m, err := mojo.CATToMojo(amount)
	if err != nil {
		return err
	}
	if request {
		b.RequestCAT(asset, m)
	} else {
		b.OfferCAT(asset, m)
	}
	return nil
}

func applyBounds(ctx *cli.Context, b *offer.Builder) error {
	if h := ctx.Uint("min-height"); h > 0 {
		b.SetMinHeight(uint32(h))
	}
	if h := ctx.Uint("max-height"); h > 0 {
		b.SetMaxHeight(uint32(h))
	}
	if t := ctx.Uint64("min-time"); t > 0 {
		b.SetMinTime(t)
	}
	if t := ctx.Uint64("max-time"); t > 0 {
		b.SetMaxTime(t)
	}
	if n := ctx.Uint("tradable-blocks"); n > 0 {
		if err := b.TradableAfterBlocks(uint32(n)); err != nil {
			return err
		}
	}
	if n := ctx.Uint("expire-blocks"); n > 0 {
		if err := b.ExpireAfterBlocks(uint32(n)); err != nil {
			return err
		}
	}
	if n := ctx.Uint("tradable-minutes"); n > 0 {
		b.TradableAfterMinutes(uint32(n))
	}
	if n := ctx.Uint("expire-minutes"); n > 0 {
		b.ExpireAfterMinutes(uint32(n))
	}
	return nil
}

func rpcFilter(ctx *cli.Context) rpcclient.OffersFilter {
	return rpcclient.OffersFilter{
		Start:              uint32(ctx.Uint("start")),
		End:                uint32(ctx.Uint("end")),
		ExcludeMyOffers:    ctx.Bool("exclude-mine"),
		ExcludeTakenOffers: ctx.Bool("exclude-taken"),
		IncludeCompleted:   ctx.Bool("include-completed"),
		Reverse:            ctx.Bool("reverse"),
	}
}

func printRecord(ctx *cli.Context, r *result.TradeRecord) {
	w := ctx.App.Writer
	fmt.Fprintf(w, "Trade id: %s\n", r.TradeID)
	fmt.Fprintf(w, "Status: %s\n", r.Status)
	if r.CreatedAtTime > 0 {
		fmt.Fprintf(w, "Created at: %d\n", r.CreatedAtTime)
	}
	if r.ConfirmedAtIndex > 0 {
		fmt.Fprintf(w, "Confirmed at height: %d\n", r.ConfirmedAtIndex)
	}
	if r.Offer != "" {
		fmt.Fprintf(w, "Offer: %s\n", r.Offer)
	}
	fmt.Fprintln(w)
}

func printAmounts(ctx *cli.Context, amounts map[string]uint64) {
	for asset, amount := range amounts {
		if asset == "xch" {
			fmt.Fprintf(ctx.App.Writer, "  %s XCH\n", mojo.MojoToXCH(amount))
		} else {
			fmt.Fprintf(ctx.App.Writer, "  %s %s\n", mojo.MojoToCAT(amount), asset)
		}
	}
}
