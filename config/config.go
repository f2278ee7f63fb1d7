// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/debugtrace/trace"
	"github.com/ava-labs/debugtrace/utils/logging"
	"github.com/ava-labs/debugtrace/version"
)

const EnvPrefix = "jstrace"

// Transports available to reach the node
const (
	EthRPC Transport = "ethrpc"
	HTTP   Transport = "http"
)

var (
	ErrMissingRPCURL = errors.New("rpc url is required")

	errUnknownTransport   = errors.New("unknown transport")
	errNonPositiveTimeout = errors.New("timeout must be positive")
	errInvalidSampleRate  = errors.New("tracing sample rate must be in [0, 1]")
	errInvalidLogFileSize = errors.New("log file max size must be positive")

	envReplacer = strings.NewReplacer("-", "_")
)

type Transport string

type Config struct {
	RPCURL string
	// RPCHeaders is nil when no header is configured
	RPCHeaders map[string]string
	Transport  Transport
	Timeout    time.Duration
	LogLevel   logging.Level
	LogFormat  string
	// LogFile.Path is empty when no log file is written
	LogFile logging.RotatingWriterConfig

	TraceConfig trace.Config
}

// BuildViper returns a viper instance reading, in order of precedence, the
// flags set in [fs], the JSTRACE_ prefixed environment, the config file and
// the flag defaults.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		RPCURL:    v.GetString(RPCURLKey),
		Transport: Transport(strings.ToLower(v.GetString(TransportKey))),
		Timeout:   v.GetDuration(TimeoutKey),
		LogFormat: v.GetString(LogFormatKey),
	}

	if headers := v.GetStringMapString(RPCHeadersKey); len(headers) > 0 {
		config.RPCHeaders = headers
	}

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}

	switch config.Transport {
	case EthRPC, HTTP:
	default:
		return Config{}, fmt.Errorf("%w: %q", errUnknownTransport, config.Transport)
	}

	if config.Timeout <= 0 {
		return Config{}, fmt.Errorf("%w: %s", errNonPositiveTimeout, config.Timeout)
	}

	config.LogFile, err = getLogFileConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.TraceConfig, err = getTraceConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func getLogFileConfig(v *viper.Viper) (logging.RotatingWriterConfig, error) {
	path := v.GetString(LogFileKey)
	if path == "" {
		return logging.RotatingWriterConfig{}, nil
	}

	maxSize := v.GetInt(LogFileMaxSizeKey)
	if maxSize <= 0 {
		return logging.RotatingWriterConfig{}, fmt.Errorf("%w: %d", errInvalidLogFileSize, maxSize)
	}
	return logging.RotatingWriterConfig{
		Path:     path,
		MaxSize:  maxSize,
		MaxFiles: v.GetInt(LogFileMaxFilesKey),
	}, nil
}

func getTraceConfig(v *viper.Viper) (trace.Config, error) {
	exporterType, err := trace.ExporterTypeFromString(v.GetString(TracingExporterTypeKey))
	if err != nil {
		return trace.Config{}, err
	}
	if exporterType == trace.NoOp {
		return trace.Config{}, nil
	}

	sampleRate := v.GetFloat64(TracingSampleRateKey)
	if sampleRate < 0 || sampleRate > 1 {
		return trace.Config{}, fmt.Errorf("%w: %v", errInvalidSampleRate, sampleRate)
	}
	return trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     exporterType,
			Endpoint: v.GetString(TracingEndpointKey),
			Headers:  v.GetStringMapString(TracingHeadersKey),
			Insecure: v.GetBool(TracingInsecureKey),
		},
		SampleRate: sampleRate,
		AppName:    version.Client,
		Version:    version.Current.String(),
	}, nil
}
