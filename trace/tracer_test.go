// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNoOp(t *testing.T) {
	require := require.New(t)

	tracer, err := New(Config{})
	require.NoError(err)
	require.Equal(Noop, tracer)

	_, span := tracer.Start(context.Background(), "span")
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestNewUnknownExporter(t *testing.T) {
	_, err := New(Config{
		ExporterConfig: ExporterConfig{
			Type: ExporterType(42),
		},
	})
	require.ErrorIs(t, err, ErrUnknownExporterType)
}

func TestNewHTTPExportsOnClose(t *testing.T) {
	require := require.New(t)

	var (
		requests atomic.Int32
		headers  = make(chan http.Header, 1)
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			headers <- r.Header.Clone()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	uri, err := url.Parse(ts.URL)
	require.NoError(err)

	tracer, err := New(Config{
		ExporterConfig: ExporterConfig{
			Type:     HTTP,
			Endpoint: uri.Host,
			Headers:  map[string]string{"X-Api-Key": "secret"},
			Insecure: true,
		},
		SampleRate: 1,
		AppName:    "test",
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "span")
	require.True(span.SpanContext().IsValid())
	span.End()

	require.NoError(tracer.Close())
	require.Positive(requests.Load())
	require.Equal("secret", (<-headers).Get("X-Api-Key"))
}
