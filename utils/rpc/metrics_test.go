// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("non-nil error")

type callerFunc func(ctx context.Context, result interface{}, method string, args ...interface{}) error

func (f callerFunc) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	return f(ctx, result, method, args...)
}

func TestMeteredCaller(t *testing.T) {
	require := require.New(t)

	var gotArgs []interface{}
	inner := callerFunc(func(_ context.Context, _ interface{}, method string, args ...interface{}) error {
		gotArgs = args
		if method == "debug_fail" {
			return errTest
		}
		return nil
	})

	registry := prometheus.NewRegistry()
	caller, err := NewMeteredCaller(inner, "jstrace", registry)
	require.NoError(err)

	require.NoError(caller.CallContext(context.Background(), nil, "debug_traceTransaction", "a", 1))
	require.Equal([]interface{}{"a", 1}, gotArgs)
	require.NoError(caller.CallContext(context.Background(), nil, "debug_traceTransaction"))
	require.ErrorIs(caller.CallContext(context.Background(), nil, "debug_fail"), errTest)

	// failures has no series for methods that never failed
	count, err := testutil.GatherAndCount(registry, "jstrace_calls", "jstrace_call_failures", "jstrace_call_duration_seconds")
	require.NoError(err)
	require.Equal(5, count)

	m := caller.(*meteredCaller)
	require.Equal(2.0, testutil.ToFloat64(m.calls.WithLabelValues("debug_traceTransaction")))
	require.Zero(testutil.ToFloat64(m.failures.WithLabelValues("debug_traceTransaction")))
	require.Equal(1.0, testutil.ToFloat64(m.calls.WithLabelValues("debug_fail")))
	require.Equal(1.0, testutil.ToFloat64(m.failures.WithLabelValues("debug_fail")))
}

func TestMeteredCallerDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewMeteredCaller(callerFunc(nil), "jstrace", registry)
	require.NoError(t, err)

	_, err = NewMeteredCaller(callerFunc(nil), "jstrace", registry)
	require.Error(t, err)
}
