package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	acceptJSON = "application/json"
	// AcceptGeoJSON is requested by the current weather report endpoint.
	AcceptGeoJSON = "application/geo+json"
)

// Request is a fully built upstream call.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Build turns validated parameters into the upstream request. Query keys are
// encoded in sorted order, so the same parameters always give the same URL.
// POST operations send the parameter set as a one-element JSON array.
func Build(d Descriptor, p Params, s Settings) (Request, error) {
	base, err := url.Parse(s.baseURL(d.Base))
	if err != nil {
		return Request{}, fmt.Errorf("parse base url for %s: %w", d.Name, err)
	}
	u := base.JoinPath(d.Path)

	accept := d.Accept
	if accept == "" {
		accept = acceptJSON
	}
	header := http.Header{}
	header.Set("User-Agent", s.UserAgent)
	header.Set("Accept", accept)

	req := Request{Method: d.HTTPMethod(), URL: u, Header: header}

	if req.Method == http.MethodPost {
		body := make(map[string]any, len(p))
		for _, param := range d.Params {
			if v, ok := p[param.Name]; ok {
				body[param.QueryKey()] = v
			}
		}
		data, err := json.Marshal([]map[string]any{body})
		if err != nil {
			return Request{}, fmt.Errorf("encode body for %s: %w", d.Name, err)
		}
		req.Body = data
		req.Header.Set("Content-Type", acceptJSON)
		return req, nil
	}

	q := url.Values{}
	if d.DataType != "" {
		q.Set(DataTypeKey, d.DataType)
	}
	for _, param := range d.Params {
		v, ok := p[param.Name]
		if !ok {
			continue
		}
		q.Set(param.QueryKey(), queryValue(v))
	}
	u.RawQuery = q.Encode()
	return req, nil
}

func queryValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
