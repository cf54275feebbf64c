package mcpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mwiater/hkomcp/internal/adapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for tool calls.
const (
	OutcomeOK       = "ok"
	OutcomeNoData   = "no_data"
	OutcomeRejected = "rejected"
)

// Metrics holds the Prometheus collectors for tool calls and upstream requests.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	upstream *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hkomcp",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hkomcp",
			Name:      "tool_call_duration_seconds",
			Help:      "End-to-end tool invocation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hkomcp",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream request latency by host and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host", "status"}),
	}
	m.registry.MustRegister(m.calls, m.duration, m.upstream)
	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records the outcome and latency of every tool call.
func (m *Metrics) Middleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			res, err := next(ctx, req)
			m.observeCall(req.Params.Name, classify(res, err), time.Since(start))
			return res, err
		}
	}
}

func (m *Metrics) observeCall(tool, outcome string, elapsed time.Duration) {
	m.calls.WithLabelValues(tool, outcome).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// InstrumentFetcher wraps an upstream fetcher with a latency histogram.
func (m *Metrics) InstrumentFetcher(next adapter.Fetcher) adapter.Fetcher {
	return adapter.FetcherFunc(func(ctx context.Context, req adapter.Request) adapter.Outcome {
		start := time.Now()
		out := next.Fetch(ctx, req)
		status := "error"
		if out.Status != 0 {
			status = strconv.Itoa(out.Status)
		}
		m.upstream.WithLabelValues(req.URL.Host, status).Observe(time.Since(start).Seconds())
		return out
	})
}

func classify(res *mcp.CallToolResult, err error) string {
	if err != nil || res == nil || res.IsError {
		return OutcomeRejected
	}
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok && tc.Text == adapter.Sentinel {
			return OutcomeNoData
		}
	}
	return OutcomeOK
}
