package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Normalize renders an outcome as the tool's text payload. A failed outcome,
// an unparsable body or an empty result returns an error and no text.
func Normalize(d Descriptor, o Outcome, format string) (string, error) {
	if o.Err != nil {
		return "", o.Err
	}
	body := bytes.TrimPrefix(o.Body, utf8BOM)

	var (
		text string
		err  error
	)
	switch {
	case d.Summarize != nil:
		text, err = d.Summarize(body)
		if err != nil {
			return "", &MalformedBodyError{Format: FormatJSON, ContentType: o.ContentType, Err: err}
		}
	case d.Format == DualFormat && format == FormatCSV:
		text = string(body)
	default:
		text, err = CanonicalJSON(body)
		if err != nil {
			return "", &MalformedBodyError{Format: FormatJSON, ContentType: o.ContentType, Err: err}
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPayload
	}
	return text, nil
}

// CanonicalJSON re-serializes a JSON document compactly with object keys in
// sorted order. Numbers keep their original text.
func CanonicalJSON(body []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", errors.New("unexpected data after top-level value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
