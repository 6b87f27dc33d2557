/*
Package rpcclient implements a client for the Chia wallet RPC surface.

The wallet itself lives in an external process, every call is forwarded to
it as `<wallet-cli> rpc wallet <endpoint> <json-payload>` and its stdout is
parsed as the response. The client adds no retries, timeouts or caching on
top, a failing or hanging wallet process surfaces to the caller as is.
*/
package rpcclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/config"
	"github.com/kballard/go-shellquote"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Executor runs the wallet binary with the given arguments and returns its
// stdout. It's the only thing Client needs from the outside world, tests
// substitute it with a fake.
type Executor interface {
	Run(args ...string) ([]byte, error)
}

// Client is the middleman for executing RPC calls against an external Chia
// wallet process. It is stateless apart from an invocation counter and is
// safe to use from multiple goroutines, although the wallet process itself
// serializes requests anyway.
type Client struct {
	exec Executor
	log  *zap.Logger
	seq  *atomic.Uint64
}

// Options defines options for the RPC client. All fields are optional.
type Options struct {
	// CLI is the command used to reach the wallet binary, split according
	// to shell quoting rules ("chia", "ssh farm chia", ...). Defaults to
	// [config.DefaultCLI]. Ignored when Executor is set.
	CLI string
	// Executor overrides the process-spawning transport.
	Executor Executor
	// Logger receives a debug record per invocation. Nop by default.
	Logger *zap.Logger
}

// New returns a new Client ready to use.
func New(opts Options) (*Client, error) {
	if opts.Executor == nil {
		cli := opts.CLI
		if cli == "" {
			cli = config.DefaultCLI
		}
		argv, err := shellquote.Split(cli)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet command %q: %w", cli, err)
		}
		if len(argv) == 0 {
			return nil, errors.New("empty wallet command")
		}
		opts.Executor = &processExecutor{argv: argv}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		exec: opts.Executor,
		log:  opts.Logger,
		seq:  atomic.NewUint64(0),
	}, nil
}

// Invoke calls the given endpoint of the given RPC category with params
// marshaled to JSON and decodes the wallet's response into result (which
// can be nil if the caller only cares about success). Only the wallet
// category is supported, anything else fails with
// [chiarpc.ErrInvalidCategory] before the process is spawned. A process or
// decoding failure is returned as [*chiarpc.GatewayError], a failure
// reported by the wallet as [*chiarpc.Error].
func (c *Client) Invoke(category chiarpc.Category, endpoint string, params, result any) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", chiarpc.ErrInvalidCategory, category)
	}
	if params == nil {
		params = struct{}{}
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal %s params: %w", endpoint, err)
	}

	var (
		id    = c.seq.Inc()
		start = time.Now()
	)
	out, err := c.exec.Run("rpc", string(category), endpoint, string(payload))
	c.log.Debug("wallet RPC",
		zap.Uint64("id", id),
		zap.String("endpoint", endpoint),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))
	if err != nil {
		return &chiarpc.GatewayError{Endpoint: endpoint, Err: err}
	}

	var hdr chiarpc.Header
	if err := json.Unmarshal(out, &hdr); err != nil {
		return &chiarpc.GatewayError{Endpoint: endpoint, Err: fmt.Errorf("JSON decoding: %w", err)}
	}
	if !hdr.Success {
		return &chiarpc.Error{Endpoint: endpoint, Message: hdr.Error}
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(out, result); err != nil {
		return &chiarpc.GatewayError{Endpoint: endpoint, Err: fmt.Errorf("JSON decoding: %w", err)}
	}
	return nil
}

// processExecutor spawns the wallet binary for every call and blocks until
// it exits.
type processExecutor struct {
	argv []string
}

// Run implements the Executor interface.
func (e *processExecutor) Run(args ...string) ([]byte, error) {
	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)
	cmd := exec.Command(e.argv[0], append(e.argv[1:], args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
