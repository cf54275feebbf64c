package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why an invocation produced no data.
type Reason string

const (
	ReasonHTTP      Reason = "http-error"
	ReasonTransport Reason = "transport-error"
	ReasonMalformed Reason = "malformed-body"
	ReasonEmpty     Reason = "empty-payload"
	ReasonBuild     Reason = "build-error"
)

// ErrEmptyPayload is returned when normalization leaves nothing to report.
var ErrEmptyPayload = errors.New("upstream returned an empty payload")

// ValidationError rejects an invocation before any network access.
type ValidationError struct {
	Tool    string
	Field   string
	Message string
	Allowed []string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Allowed) > 0 {
		msg += ". Must be one of: " + strings.Join(e.Allowed, ", ")
	}
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, msg)
}

// TransportError wraps a DNS, connection or timeout fault.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamHTTPError reports a non-2xx status.
type UpstreamHTTPError struct {
	URL    string
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("request %s: HTTP status %d", e.URL, e.Status)
}

// MalformedBodyError reports a body that cannot be parsed as its declared format.
// ContentType is the upstream's Content-Type header, if it sent one.
type MalformedBodyError struct {
	Format      string
	ContentType string
	Err         error
}

func (e *MalformedBodyError) Error() string {
	if e.ContentType != "" {
		return fmt.Sprintf("malformed %s body (content type %s): %v", e.Format, e.ContentType, e.Err)
	}
	return fmt.Sprintf("malformed %s body: %v", e.Format, e.Err)
}

func (e *MalformedBodyError) Unwrap() error { return e.Err }

// ReasonOf maps a pipeline failure to its reason class.
func ReasonOf(err error) Reason {
	var (
		transport *TransportError
		status    *UpstreamHTTPError
		malformed *MalformedBodyError
	)
	switch {
	case errors.As(err, &status):
		return ReasonHTTP
	case errors.As(err, &transport):
		return ReasonTransport
	case errors.As(err, &malformed):
		return ReasonMalformed
	case errors.Is(err, ErrEmptyPayload):
		return ReasonEmpty
	default:
		return ReasonBuild
	}
}
