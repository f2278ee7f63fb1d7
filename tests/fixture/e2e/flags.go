// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ava-labs/debugtrace/config"
)

const (
	NodeURLEnvName = "RPC_TEST_NODE_URL"
	TxHashEnvName  = "RPC_TEST_TX_HASH"

	// https://sepolia.etherscan.io/tx/0x5525c63a805df2b83c113ebcc8c7672a3b290673c4e81335b410cd9ebc64e085
	DefaultTxHash = "0x5525c63a805df2b83c113ebcc8c7672a3b290673c4e81335b410cd9ebc64e085"
)

type FlagVars struct {
	nodeURL   string
	txHash    string
	transport string
	envFile   string
}

// LoadEnvFile loads the env file, if any, without overriding variables that
// are already set.
func (v *FlagVars) LoadEnvFile() error {
	if len(v.envFile) == 0 {
		return nil
	}
	if err := godotenv.Load(v.envFile); err != nil {
		return fmt.Errorf("couldn't load env file %q: %w", v.envFile, err)
	}
	return nil
}

func (v *FlagVars) NodeURL() string {
	if len(v.nodeURL) == 0 {
		return os.Getenv(NodeURLEnvName)
	}
	return v.nodeURL
}

func (v *FlagVars) TxHash() string {
	switch {
	case len(v.txHash) > 0:
		return v.txHash
	case len(os.Getenv(TxHashEnvName)) > 0:
		return os.Getenv(TxHashEnvName)
	default:
		return DefaultTxHash
	}
}

func (v *FlagVars) Transport() config.Transport {
	return config.Transport(v.transport)
}

func RegisterFlags() *FlagVars {
	vars := FlagVars{}
	flag.StringVar(
		&vars.nodeURL,
		"node-url",
		"",
		fmt.Sprintf("[optional] JSON-RPC endpoint of a node with the debug namespace enabled. Also possible to configure via the %s env variable. Tests are skipped if unset.", NodeURLEnvName),
	)
	flag.StringVar(
		&vars.txHash,
		"tx-hash",
		"",
		fmt.Sprintf("[optional] transaction to trace. Also possible to configure via the %s env variable. Defaults to %s.", TxHashEnvName, DefaultTxHash),
	)
	flag.StringVar(
		&vars.transport,
		"transport",
		string(config.DefaultTransport),
		fmt.Sprintf("[optional] JSON-RPC client to use. Should be one of {%s, %s}", config.EthRPC, config.HTTP),
	)
	flag.StringVar(
		&vars.envFile,
		"env-file",
		"",
		"[optional] file of KEY=VALUE lines loaded into the environment before the suite starts.",
	)
	return &vars
}
