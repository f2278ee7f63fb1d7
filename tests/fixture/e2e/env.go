// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/ava-labs/debugtrace/config"
	"github.com/ava-labs/debugtrace/ethclient/debugclient"
	"github.com/ava-labs/debugtrace/tests"
	"github.com/ava-labs/debugtrace/utils/logging"
	"github.com/ava-labs/debugtrace/utils/rpc"

	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

// DefaultTimeout bounds a single trace against a remote node.
const DefaultTimeout = 2 * time.Minute

var (
	// Env is initialized in BeforeSuite and is nil when no node is configured.
	Env *TestEnvironment

	errInvalidTxHash = errors.New("invalid transaction hash")
)

type TestEnvironment struct {
	NodeURL   string
	TxHash    common.Hash
	Transport config.Transport

	Log logging.Logger
}

// NewTestEnvironment returns nil if no node url is configured.
func NewTestEnvironment(flagVars *FlagVars) (*TestEnvironment, error) {
	if err := flagVars.LoadEnvFile(); err != nil {
		return nil, err
	}
	nodeURL := flagVars.NodeURL()
	if len(nodeURL) == 0 {
		return nil, nil
	}

	rawTxHash := flagVars.TxHash()
	b, err := hexutil.Decode(rawTxHash)
	if err != nil || len(b) != common.HashLength {
		return nil, fmt.Errorf("%w: %q", errInvalidTxHash, rawTxHash)
	}

	transport := flagVars.Transport()
	switch transport {
	case config.EthRPC, config.HTTP:
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}

	txHash := common.BytesToHash(b)
	log := tests.NewDefaultLogger("e2e")
	log.Info("configured test environment",
		zap.Stringer("txHash", txHash),
		zap.String("transport", string(transport)),
	)
	return &TestEnvironment{
		NodeURL:   nodeURL,
		TxHash:    txHash,
		Transport: transport,
		Log:       log,
	}, nil
}

// NewClient returns a debug client for the configured node and a function
// releasing its connection.
func (te *TestEnvironment) NewClient(ctx context.Context) (*debugclient.Client, func(), error) {
	if te.Transport == config.HTTP {
		caller, err := rpc.NewHTTPCaller(te.NodeURL)
		if err != nil {
			return nil, nil, err
		}
		return debugclient.New(caller), func() {}, nil
	}

	client, err := ethrpc.DialContext(ctx, te.NodeURL)
	if err != nil {
		return nil, nil, err
	}
	return debugclient.New(client), client.Close, nil
}

func DefaultContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), DefaultTimeout)
}
