// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/debugtrace/config"
	"github.com/ava-labs/debugtrace/ethclient/debugclient"
	"github.com/ava-labs/debugtrace/trace"
	"github.com/ava-labs/debugtrace/tracers"
	"github.com/ava-labs/debugtrace/tracers/js"
	"github.com/ava-labs/debugtrace/tracers/js/jstest"
	"github.com/ava-labs/debugtrace/utils/logging"
	"github.com/ava-labs/debugtrace/version"
)

const testTxHash = "0x5525c63a805df2b83c113ebcc8c7672a3b290673c4e81335b410cd9ebc64e085"

func execute(t *testing.T, args ...string) (string, error) {
	t.Setenv(config.EnvName(config.RPCURLKey), "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func newNode(t *testing.T) string {
	server, err := jstest.NewServer(jstest.NewDebugAPI(map[common.Hash]int{
		common.HexToHash(testTxHash): 5,
	}))
	require.NoError(t, err)
	t.Cleanup(server.Stop)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestCodeCmd(t *testing.T) {
	require := require.New(t)

	out, err := execute(t, "code")
	require.NoError(err)
	require.Equal(js.Builder{}.Code()+"\n", out)

	stepFile := filepath.Join(t.TempDir(), "step.js")
	require.NoError(os.WriteFile(stepFile, []byte("this.n++;"), 0o600))

	out, err = execute(t, "code", "--setup", "this.n = 0;", "--step-file", stepFile, "--result", "return this.n;")
	require.NoError(err)
	expected := js.Builder{}.
		SetupBody("this.n = 0;").
		StepBody("this.n++;").
		ResultBody("return this.n;")
	require.Equal(expected.Code()+"\n", out)
}

func TestCodeCmdEmptyResult(t *testing.T) {
	out, err := execute(t, "code", "--result=")
	require.NoError(t, err)
	require.Equal(t, js.Builder{}.ResultBody("").Code()+"\n", out)
}

func TestCodeCmdOptions(t *testing.T) {
	require := require.New(t)

	out, err := execute(t, "code", "--options", "--result", "return {ok:true};")
	require.NoError(err)

	expected, err := json.Marshal(js.Builder{}.ResultBody("return {ok:true};").TracingOptions())
	require.NoError(err)
	require.JSONEq(string(expected), out)
}

func TestCodeCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "body and file",
			args: []string{"code", "--step", "x", "--step-file", "step.js"},
		},
		{
			name: "missing file",
			args: []string{"code", "--exit-file", filepath.Join(t.TempDir(), "missing.js")},
		},
		{
			name: "unexpected argument",
			args: []string{"code", "extra"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)
			require.Error(t, err)
		})
	}
}

func TestNoopCmd(t *testing.T) {
	require := require.New(t)

	out, err := execute(t, "noop")
	require.NoError(err)
	require.Equal(js.Noop{}.Code()+"\n", out)

	out, err = execute(t, "noop", "--options")
	require.NoError(err)
	expected, err := json.Marshal(js.Noop{}.TracingOptions())
	require.NoError(err)
	require.JSONEq(string(expected), out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.String()+"\n", out)
}

func TestTraceCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "default template",
			expected: `{}`,
		},
		{
			name:     "result body",
			args:     []string{"--result", "return {ok:true};"},
			expected: `{"ok": true}`,
		},
		{
			name:     "step counter",
			args:     []string{"--setup", "this.n = 0;", "--step", "this.n++;", "--result", "return this.n;"},
			expected: `5`,
		},
		{
			name:     "noop",
			args:     []string{"--noop"},
			expected: `{}`,
		},
		{
			name:     "builtin",
			args:     []string{"--builtin", tracers.NoopTracer},
			expected: `{}`,
		},
		{
			name:     "tracer config",
			args:     []string{"--setup", "this.cfg = cfg;", "--result", "return this.cfg;", "--tracer-config", `{"a": 1}`},
			expected: `{"a": 1}`,
		},
		{
			name:     "pretty",
			args:     []string{"--pretty", "--result", "return {ok:true};"},
			expected: `{"ok": true}`,
		},
	}
	for _, transport := range []config.Transport{config.EthRPC, config.HTTP} {
		for _, test := range tests {
			t.Run(string(transport)+"/"+test.name, func(t *testing.T) {
				require := require.New(t)

				args := append([]string{
					"trace", testTxHash,
					"--rpc-url", newNode(t),
					"--transport", string(transport),
					"--log-level", "off",
				}, test.args...)
				out, err := execute(t, args...)
				require.NoError(err)
				require.JSONEq(test.expected, out)
			})
		}
	}
}

func TestTraceCmdErrors(t *testing.T) {
	uri := newNode(t)
	tests := []struct {
		name      string
		args      []string
		expectErr error
	}{
		{
			name:      "missing rpc url",
			args:      []string{"trace", testTxHash},
			expectErr: config.ErrMissingRPCURL,
		},
		{
			name:      "invalid hash",
			args:      []string{"trace", "0xzz", "--rpc-url", uri},
			expectErr: errInvalidTxHash,
		},
		{
			name:      "missing hex prefix",
			args:      []string{"trace", testTxHash[2:], "--rpc-url", uri},
			expectErr: errInvalidTxHash,
		},
		{
			name:      "short hash",
			args:      []string{"trace", "0x01", "--rpc-url", uri},
			expectErr: errInvalidTxHash,
		},
		{
			name:      "unknown builtin",
			args:      []string{"trace", testTxHash, "--rpc-url", uri, "--builtin", "bogusTracer"},
			expectErr: errUnknownBuiltin,
		},
		{
			name:      "invalid tracer config",
			args:      []string{"trace", testTxHash, "--rpc-url", uri, "--tracer-config", "{"},
			expectErr: errInvalidTracerConfig,
		},
		{
			name: "noop and builtin",
			args: []string{"trace", testTxHash, "--rpc-url", uri, "--noop", "--builtin", tracers.CallTracer},
		},
		{
			name: "noop and hook",
			args: []string{"trace", testTxHash, "--rpc-url", uri, "--noop", "--step", "x"},
		},
		{
			name: "missing hash",
			args: []string{"trace", "--rpc-url", uri},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)
			require.Error(t, err)
			if test.expectErr != nil {
				require.ErrorIs(t, err, test.expectErr)
			}
		})
	}
}

func TestTraceCmdNodeError(t *testing.T) {
	require := require.New(t)

	unknownTx := "0x" + common.Bytes2Hex(common.HexToHash("0x01").Bytes())
	out, err := execute(t, "trace", unknownTx, "--rpc-url", newNode(t), "--log-level", "off")
	require.Error(err)
	require.Empty(out)

	code, ok := debugclient.ErrorCode(err)
	require.True(ok)
	require.Equal(-32000, code)
}

func TestTraceCmdExportsSpans(t *testing.T) {
	require := require.New(t)

	var requests atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	collectorURL, err := url.Parse(collector.URL)
	require.NoError(err)

	out, err := execute(t,
		"trace", testTxHash,
		"--rpc-url", newNode(t),
		"--log-level", "off",
		"--noop",
		"--"+config.TracingExporterTypeKey, trace.HTTP.String(),
		"--"+config.TracingEndpointKey, collectorURL.Host,
	)
	require.NoError(err)
	require.JSONEq(`{}`, out)
	require.Positive(requests.Load())
}

func TestTraceCmdLogFile(t *testing.T) {
	require := require.New(t)

	logFile := filepath.Join(t.TempDir(), "jstrace.log")
	_, err := execute(t,
		"trace", testTxHash,
		"--rpc-url", newNode(t),
		"--log-level", "debug",
		"--log-format", "plain",
		"--log-file", logFile,
		"--noop",
	)
	require.NoError(err)

	b, err := os.ReadFile(logFile)
	require.NoError(err)
	require.Contains(string(b), `"msg":"tracing transaction"`)
	require.Contains(string(b), `"msg":"jstrace_calls"`)
}

func TestTraceCmdRPCHeaders(t *testing.T) {
	server, err := jstest.NewServer(jstest.NewDebugAPI(map[common.Hash]int{
		common.HexToHash(testTxHash): 1,
	}))
	require.NoError(t, err)
	t.Cleanup(server.Stop)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "missing api key", http.StatusUnauthorized)
			return
		}
		server.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	for _, transport := range []config.Transport{config.EthRPC, config.HTTP} {
		t.Run(string(transport), func(t *testing.T) {
			require := require.New(t)

			args := []string{
				"trace", testTxHash,
				"--rpc-url", ts.URL,
				"--transport", string(transport),
				"--log-level", "off",
				"--noop",
			}
			_, err := execute(t, args...)
			require.Error(err)

			out, err := execute(t, append(args, "--"+config.RPCHeadersKey, "X-Api-Key=secret")...)
			require.NoError(err)
			require.JSONEq(`{}`, out)
		})
	}
}

func TestNewLogger(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	log, closeLog, err := newLogger(config.Config{
		LogLevel:  logging.Off,
		LogFormat: logging.AutoString,
	}, &buf)
	require.NoError(err)
	require.Equal(logging.NoLog{}, log)
	closeLog()

	log, closeLog, err = newLogger(config.Config{
		LogLevel:  logging.Info,
		LogFormat: "plain",
	}, &buf)
	require.NoError(err)
	log.Info("shown")
	closeLog()
	require.Contains(buf.String(), "shown")
}
