package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/mwiater/hkomcp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })
	return &buf
}

func upstream(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func pipelineFor(srv *httptest.Server) *Pipeline {
	s := Settings{WeatherBaseURL: srv.URL + "/weatherAPI/opendata/", TransportBaseURL: srv.URL + "/api/"}
	return NewPipeline(s, testClock(), nil)
}

func TestInvokeReturnsCanonicalJSON(t *testing.T) {
	srv, _ := upstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weatherAPI/opendata/weather.php", r.URL.Path)
		assert.Equal(t, "fnd", r.URL.Query().Get("dataType"))
		assert.Equal(t, "tc", r.URL.Query().Get("lang"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weatherForecast":[],"generalSituation":"Fine"}`))
	})

	got, err := pipelineFor(srv).Invoke(context.Background(), reportDescriptor(), map[string]any{"lang": "tc"})
	require.NoError(t, err)
	assert.Equal(t, `{"generalSituation":"Fine","weatherForecast":[]}`, got)
}

func TestInvokePassesCSVThrough(t *testing.T) {
	srv, _ := upstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "csv", r.URL.Query().Get("rformat"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Month,Day,Hour,Height\n1,1,0,1.2\n"))
	})

	got, err := pipelineFor(srv).Invoke(context.Background(), tideDescriptor(), map[string]any{"station": "CCH", "year": 2024, "rformat": "csv"})
	require.NoError(t, err)
	assert.Equal(t, "Month,Day,Hour,Height\n1,1,0,1.2\n", got)
}

func TestInvokeRejectsWithoutNetwork(t *testing.T) {
	logs := captureLogs(t)
	srv, hits := upstream(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := pipelineFor(srv).Invoke(context.Background(), tideDescriptor(), map[string]any{"station": "CCH", "year": 1999})
	requireRejected(t, err, "year")
	assert.Zero(t, atomic.LoadInt32(hits))
	assert.Contains(t, logs.String(), "rejected")
}

func TestInvokeSentinelOnFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		reason  Reason
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { http.Error(w, "boom", http.StatusInternalServerError) },
			reason:  ReasonHTTP,
		},
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) },
			reason:  ReasonHTTP,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			reason: ReasonMalformed,
		},
		{
			name:    "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			reason:  ReasonMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			srv, _ := upstream(t, tt.handler)

			got, err := pipelineFor(srv).Invoke(context.Background(), reportDescriptor(), nil)
			require.NoError(t, err)
			assert.Equal(t, Sentinel, got)
			assert.Contains(t, logs.String(), string(tt.reason))
		})
	}
}

func TestInvokeSentinelWhenUnreachable(t *testing.T) {
	logs := captureLogs(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	p := pipelineFor(srv)
	srv.Close()

	got, err := p.Invoke(context.Background(), reportDescriptor(), nil)
	require.NoError(t, err)
	assert.Equal(t, Sentinel, got)
	assert.Contains(t, logs.String(), string(ReasonTransport))
}

func TestInvokeLogsCallID(t *testing.T) {
	logs := captureLogs(t)
	p := NewPipeline(DefaultSettings(), testClock(), FetcherFunc(func(context.Context, Request) Outcome {
		return Outcome{Status: 502, Err: &UpstreamHTTPError{URL: "u", Status: 502}}
	}))

	ctx := logging.WithCallID(context.Background(), "call-42")
	got, err := p.Invoke(ctx, reportDescriptor(), nil)
	require.NoError(t, err)
	assert.Equal(t, Sentinel, got)
	out := logs.String()
	assert.Contains(t, out, "call-42")
	assert.Contains(t, out, "status=502")
}

func TestHandlerBindsDescriptor(t *testing.T) {
	var seen []string
	p := NewPipeline(DefaultSettings(), testClock(), FetcherFunc(func(_ context.Context, req Request) Outcome {
		seen = append(seen, req.URL.Query().Get(DataTypeKey))
		return Outcome{Status: 200, Body: []byte(`{}`)}
	}))

	h := p.Handler(reportDescriptor())
	got, err := h(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
	assert.Equal(t, []string{"fnd"}, seen)
}

func TestNewPipelineAppliesDefaults(t *testing.T) {
	p := NewPipeline(Settings{}, nil, nil)
	assert.Equal(t, DefaultSettings(), p.Settings())
}
