// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"
	RPCURLKey     = "rpc-url"
	RPCHeadersKey = "rpc-header"
	TransportKey  = "transport"
	TimeoutKey    = "timeout"
	LogLevelKey   = "log-level"
	LogFormatKey  = "log-format"

	LogFileKey         = "log-file"
	LogFileMaxSizeKey  = "log-file-max-size"
	LogFileMaxFilesKey = "log-file-max-files"

	TracingExporterTypeKey = "tracing-exporter-type"
	TracingEndpointKey     = "tracing-endpoint"
	TracingInsecureKey     = "tracing-insecure"
	TracingSampleRateKey   = "tracing-sample-rate"
	TracingHeadersKey      = "tracing-headers"
)
