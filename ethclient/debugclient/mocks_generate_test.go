// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package debugclient

//go:generate go run go.uber.org/mock/mockgen@v0.4 -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/caller.go -mock_names=Caller=Caller github.com/ava-labs/debugtrace/utils/rpc Caller
