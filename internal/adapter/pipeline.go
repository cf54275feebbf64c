package adapter

import (
	"context"
	"errors"

	"github.com/mwiater/hkomcp/internal/logging"
)

// Sentinel is the tool result reported whenever no data could be produced.
const Sentinel = "<error>nothing returned</error>"

// Pipeline runs Validate → Build → Fetch → Normalize for any descriptor.
// It holds no per-invocation state and is safe for concurrent use.
type Pipeline struct {
	settings Settings
	clock    Clock
	fetcher  Fetcher
}

// NewPipeline wires the immutable settings, a clock and the upstream fetcher.
func NewPipeline(settings Settings, clock Clock, fetcher Fetcher) *Pipeline {
	settings = settings.WithDefaults()
	if clock == nil {
		clock = SystemClock{}
	}
	if fetcher == nil {
		fetcher = NewHTTPClient(settings.Timeout)
	}
	return &Pipeline{settings: settings, clock: clock, fetcher: fetcher}
}

// Settings returns the pipeline's configuration.
func (p *Pipeline) Settings() Settings { return p.settings }

// Handler binds the pipeline to one descriptor.
func (p *Pipeline) Handler(d Descriptor) func(ctx context.Context, args map[string]any) (string, error) {
	return func(ctx context.Context, args map[string]any) (string, error) {
		return p.Invoke(ctx, d, args)
	}
}

// Invoke runs one tool call. The only error it returns is a *ValidationError.
// Every upstream or decoding failure yields Sentinel and is logged instead.
func (p *Pipeline) Invoke(ctx context.Context, d Descriptor, args map[string]any) (string, error) {
	log := logging.FromContext(ctx).With("tool", d.Name)

	params, err := Validate(d, args, p.settings, p.clock)
	if err != nil {
		log.Warn("rejected", "err", err)
		return "", err
	}

	req, err := Build(d, params, p.settings)
	if err != nil {
		log.Error("no data", "reason", ReasonBuild, "err", err)
		return Sentinel, nil
	}
	logging.LogRequest(ctx, "out", req.URL.Host, d.Name, req.URL.String())

	outcome := p.fetcher.Fetch(ctx, req)
	text, err := Normalize(d, outcome, params.Format(d))
	if err != nil {
		fields := []any{"reason", ReasonOf(err), "err", err}
		var status *UpstreamHTTPError
		if errors.As(err, &status) {
			fields = append(fields, "status", status.Status)
		}
		log.Error("no data", fields...)
		return Sentinel, nil
	}

	logging.LogRequest(ctx, "in", req.URL.Host, d.Name, len(text))
	return text, nil
}
