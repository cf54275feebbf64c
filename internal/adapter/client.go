package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of an upstream body is read.
const maxBodyBytes = 8 << 20

// Outcome is the result of one upstream call. Err is nil on success and
// otherwise a *TransportError or *UpstreamHTTPError.
type Outcome struct {
	Body        []byte
	ContentType string
	Status      int
	Err         error
}

// Failed reports whether the call produced no usable body.
func (o Outcome) Failed() bool { return o.Err != nil }

// Fetcher performs upstream calls.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) Outcome
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, req Request) Outcome

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, req Request) Outcome { return f(ctx, req) }

// HTTPClient is the net/http backed Fetcher. It is safe for concurrent use.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns a client whose calls time out after timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Fetch sends the request once. Only the status line is interpreted.
func (c *HTTPClient) Fetch(ctx context.Context, req Request) Outcome {
	target := req.URL.String()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	hr, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return Outcome{Err: &TransportError{URL: target, Err: fmt.Errorf("create request: %w", err)}}
	}
	hr.Header = req.Header.Clone()

	resp, err := c.client.Do(hr)
	if err != nil {
		return Outcome{Err: &TransportError{URL: target, Err: err}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Outcome{Status: resp.StatusCode, Err: &UpstreamHTTPError{URL: target, Status: resp.StatusCode}}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Outcome{Status: resp.StatusCode, Err: &TransportError{URL: target, Err: fmt.Errorf("read body: %w", err)}}
	}
	return Outcome{
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
		Status:      resp.StatusCode,
	}
}
