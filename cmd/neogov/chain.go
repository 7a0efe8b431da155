package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neogov-contract/internal/config"
	"go.uber.org/zap"
)

// remoteBlockchain wraps Neo RPC connection used by the commands.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker
}

// dial connects to the configured Neo RPC server. Connection and all requests
// are done within the configured timeout.
func dial(ctx context.Context, cfg *config.Config) (*remoteBlockchain, error) {
	if cfg.RPCEndpoint == "" {
		return nil, errors.New("missing Neo RPC endpoint")
	}

	zap.L().Debug("dialing Neo RPC server", zap.String("endpoint", cfg.RPCEndpoint), zap.Duration("timeout", cfg.Timeout))

	c, err := rpcclient.New(ctx, cfg.RPCEndpoint, rpcclient.Options{
		DialTimeout:    cfg.Timeout,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	return &remoteBlockchain{
		rpc:     c,
		invoker: invoker.New(c, nil),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// contractAddress returns the contract address given by flag value or, if
// it's empty, by the configured one.
func contractAddress(flagValue, configured, name string) (util.Uint160, error) {
	s := flagValue
	if s == "" {
		s = configured
	}
	if s == "" {
		return util.Uint160{}, fmt.Errorf("%s contract address is neither configured nor specified", name)
	}

	h, err := parseAccount(s)
	if err != nil {
		return h, fmt.Errorf("invalid %s contract address: %w", name, err)
	}
	return h, nil
}
