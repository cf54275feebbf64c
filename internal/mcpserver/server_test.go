package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/mwiater/hkomcp/internal/appconfig"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = adapter.FixedClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, adapter.HongKong))

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func fixedFetcher(out adapter.Outcome) adapter.Fetcher {
	return adapter.FetcherFunc(func(context.Context, adapter.Request) adapter.Outcome { return out })
}

func assemble(t *testing.T, cfg appconfig.Config, fetcher adapter.Fetcher) *Runtime {
	t.Helper()
	rt, err := Assemble(cfg, fetcher, testClock)
	require.NoError(t, err)
	return rt
}

func rpc(t *testing.T, rt *Runtime, id int, method string, params any) rpcResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": id, "method": method, "params": params})
	require.NoError(t, err)

	reply := rt.Server.HandleMessage(context.Background(), raw)
	data, err := json.Marshal(reply)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func callTool(t *testing.T, rt *Runtime, name string, args map[string]any) toolResult {
	t.Helper()
	resp := rpc(t, rt, 2, "tools/call", map[string]any{"name": name, "arguments": args})
	require.Nil(t, resp.Error)
	var res toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &res))
	require.Len(t, res.Content, 1)
	return res
}

func TestToolsListMatchesRegistry(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{}))

	resp := rpc(t, rt, 1, "tools/list", map[string]any{})
	require.Nil(t, resp.Error)

	var listed struct {
		Tools []struct {
			Name        string         `json:"name"`
			InputSchema map[string]any `json:"inputSchema"`
			Annotations struct {
				ReadOnlyHint *bool `json:"readOnlyHint"`
			} `json:"annotations"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &listed))

	names := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		names[tool.Name] = true
		assert.Equal(t, "object", tool.InputSchema["type"], tool.Name)
		require.NotNil(t, tool.Annotations.ReadOnlyHint, tool.Name)
		assert.True(t, *tool.Annotations.ReadOnlyHint, tool.Name)
	}
	assert.Len(t, listed.Tools, rt.Registry.Len())
	for _, want := range []string{"fnd", "hhhot", "get-eta", "weather-forecast", "available_tools"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestToolsCallSuccess(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{Status: 200, Body: []byte(`{"b":1,"a":2}`)}))

	res := callTool(t, rt, "warnsum", map[string]any{"lang": "en"})
	assert.False(t, res.IsError)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Equal(t, `{"a":2,"b":1}`, res.Content[0].Text)
}

func TestToolsCallSentinel(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{Status: 500, Err: &adapter.UpstreamHTTPError{URL: "u", Status: 500}}))

	res := callTool(t, rt, "fnd", nil)
	assert.False(t, res.IsError)
	assert.Equal(t, adapter.Sentinel, res.Content[0].Text)
}

func TestToolsCallRejection(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{}))

	res := callTool(t, rt, "hlt", map[string]any{"station": "CCH", "year": 2031})
	assert.True(t, res.IsError)
	assert.Equal(t, "invalid year: must be between 2022 and 2026, got 2031", res.Content[0].Text)
}

func TestConcurrentCalls(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, adapter.FetcherFunc(func(_ context.Context, req adapter.Request) adapter.Outcome {
		return adapter.Outcome{Status: 200, Body: []byte(fmt.Sprintf(`{"dataType":%q}`, req.URL.Query().Get("dataType")))}
	}))

	names := []string{"fnd", "flw", "swt", "warnsum", "qem"}
	errs := make(chan error, len(names)*10)
	for i := 0; i < 10; i++ {
		for _, name := range names {
			go func(name string) {
				out, err := rt.Registry.Call(context.Background(), name, nil)
				if err == nil && out != fmt.Sprintf(`{"dataType":%q}`, name) {
					err = fmt.Errorf("%s got %s", name, out)
				}
				errs <- err
			}(name)
		}
	}
	for i := 0; i < len(names)*10; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestMetricsCountOutcomes(t *testing.T) {
	rt := assemble(t, appconfig.Config{Metrics: true}, fixedFetcher(adapter.Outcome{Status: 200, Body: []byte(`{}`)}))
	require.NotNil(t, rt.Metrics)

	callTool(t, rt, "fnd", nil)
	callTool(t, rt, "fnd", nil)
	callTool(t, rt, "srs", map[string]any{"year": 1990})

	assert.Equal(t, 2.0, testutil.ToFloat64(rt.Metrics.calls.WithLabelValues("fnd", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rt.Metrics.calls.WithLabelValues("srs", OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(rt.Metrics.upstream))
}

func TestMetricsNoDataOutcome(t *testing.T) {
	rt := assemble(t, appconfig.Config{Metrics: true}, fixedFetcher(adapter.Outcome{Status: 404, Err: &adapter.UpstreamHTTPError{URL: "u", Status: 404}}))

	callTool(t, rt, "qem", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(rt.Metrics.calls.WithLabelValues("qem", OutcomeNoData)))
}

func TestRouterHealthAndMetrics(t *testing.T) {
	rt := assemble(t, appconfig.Config{Metrics: true}, fixedFetcher(adapter.Outcome{Status: 200, Body: []byte(`{}`)}))
	callTool(t, rt, "fnd", nil)

	srv := httptest.NewServer(NewRouter(rt.Server, rt.Metrics))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	assert.Equal(t, http.StatusOK, mresp.StatusCode)
	body, err := io.ReadAll(mresp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hkomcp_tool_calls_total{outcome="ok",tool="fnd"} 1`)
}

func TestRouterWithoutMetrics(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{}))
	srv := httptest.NewServer(NewRouter(rt.Server, rt.Metrics))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssembleSealsRegistry(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{}))
	err := rt.Registry.Register("late", "", json.RawMessage(`{}`), func(context.Context, map[string]any) (string, error) { return "", nil })
	assert.Error(t, err)
}

func TestServeHTTPStopsOnCancel(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{}))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeHTTP(ctx, "127.0.0.1:0", NewRouter(rt.Server, nil)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ServeHTTP did not stop after cancel")
	}
}

func TestServeStdio(t *testing.T) {
	rt := assemble(t, appconfig.Config{}, fixedFetcher(adapter.Outcome{Status: 500, Err: &adapter.UpstreamHTTPError{URL: "u", Status: 500}}))

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"fnd","arguments":{}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"srs","arguments":{"year":2017}}}`,
	}, "\n") + "\n"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	require.NoError(t, ServeStdio(ctx, rt.Server, strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, out.String())

	var replies []rpcResponse
	for _, line := range lines {
		var resp rpcResponse
		require.NoError(t, json.Unmarshal([]byte(line), &resp), line)
		require.Nil(t, resp.Error, line)
		replies = append(replies, resp)
	}
	assert.Equal(t, []int{1, 2, 3}, []int{replies[0].ID, replies[1].ID, replies[2].ID})

	var initResult struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(replies[0].Result, &initResult))
	assert.Equal(t, serverName, initResult.ServerInfo.Name)

	var noData, rejected toolResult
	require.NoError(t, json.Unmarshal(replies[1].Result, &noData))
	require.Len(t, noData.Content, 1)
	assert.False(t, noData.IsError)
	assert.Equal(t, adapter.Sentinel, noData.Content[0].Text)

	require.NoError(t, json.Unmarshal(replies[2].Result, &rejected))
	require.Len(t, rejected.Content, 1)
	assert.True(t, rejected.IsError)
	assert.Equal(t, "invalid year: must be between 2018 and 2026, got 2017", rejected.Content[0].Text)
}
