// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

const Client = "jstrace"

// String returns the client name, version and, when known, the commit the
// binary was built from.
func String() string {
	s := fmt.Sprintf("%s/%s", Client, Current)
	if GitCommit != "" {
		s += fmt.Sprintf(" [commit=%s]", GitCommit)
	}
	return s
}
