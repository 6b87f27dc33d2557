/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"

	"github.com/hazeltree/chiactl/pkg/config"
	"github.com/hazeltree/chiactl/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ChiaCLIFlag is a long flag name for the wallet command. It can be used to
// check for flag presence in the context.
const ChiaCLIFlag = "chia-cli"

// RPC is a set of flags used by every command that talks to the wallet.
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  ChiaCLIFlag + ", c",
		Usage: "command used to reach the wallet binary (overrides configuration)",
	},
	cli.StringFlag{
		Name:  "config-file",
		Usage: "path to the yaml configuration file",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "enable debug logging of wallet invocations",
	},
}

// GetConfigFromContext loads the configuration file named by the context or
// returns the defaults when none is given.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if p := ctx.String("config-file"); p != "" {
		return config.LoadFile(p)
	}
	return config.Default(), nil
}

// HandleLoggingParams reads logging parameters and builds a console logger.
// If a user selected debug level, the function enables it; if LogPath is
// configured, output goes to that file instead of stderr.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	if cfg.LogPath != "" {
		cc.OutputPaths = []string{cfg.LogPath}
	}
	return cc.Build()
}

// GetRPCClient returns an RPC client instance for the given Context.
func GetRPCClient(ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	logger, err := HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	command := cfg.ApplicationConfiguration.ChiaCLI
	if s := ctx.String(ChiaCLIFlag); s != "" {
		command = s
	}
	c, err := rpcclient.New(rpcclient.Options{CLI: command, Logger: logger})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}
