// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tests

import (
	"fmt"

	"github.com/onsi/ginkgo/v2/formatter"
)

// Outf writes a ginkgo formatted string to stdout, e.g.
//
//	Outf("{{green}}traced %s{{/}}\n", txHash)
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}
