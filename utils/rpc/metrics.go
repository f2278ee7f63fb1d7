// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const methodLabel = "method"

var _ Caller = (*meteredCaller)(nil)

type meteredCaller struct {
	caller Caller

	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.CounterVec
}

// NewMeteredCaller returns a Caller that counts the calls, failures and total
// call duration of [caller] per method.
func NewMeteredCaller(
	caller Caller,
	namespace string,
	registerer prometheus.Registerer,
) (Caller, error) {
	labels := []string{methodLabel}
	m := &meteredCaller{
		caller: caller,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "number of JSON-RPC calls issued",
			},
			labels,
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "call_failures",
				Help:      "number of JSON-RPC calls that returned an error",
			},
			labels,
		),
		duration: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "call_duration_seconds",
				Help:      "total time spent in JSON-RPC calls",
			},
			labels,
		),
	}
	err := errors.Join(
		registerer.Register(m.calls),
		registerer.Register(m.failures),
		registerer.Register(m.duration),
	)
	return m, err
}

func (m *meteredCaller) CallContext(
	ctx context.Context,
	result interface{},
	method string,
	args ...interface{},
) error {
	start := time.Now()
	err := m.caller.CallContext(ctx, result, method, args...)
	m.duration.WithLabelValues(method).Add(time.Since(start).Seconds())
	m.calls.WithLabelValues(method).Inc()
	if err != nil {
		m.failures.WithLabelValues(method).Inc()
	}
	return err
}
