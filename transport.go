package engivault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxErrBodySize caps the amount of response body kept when building
// an error for a failed exchange. This prevents unbounded memory usage
// when a large response arrives with an error status.
const maxErrBodySize = 4 << 10 // 4KB

// envelope is the wire-level wrapper around every API response.
// Success and Timestamp are pointers so a response that omits them can
// be told apart from one carrying zero values.
type envelope struct {
	Success   *bool           `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *string         `json:"error"`
	Timestamp *string         `json:"timestamp"`
}

// transport owns the authenticated HTTP session shared by every
// service of one client. Credentials and base URL are fixed at
// construction and never mutated afterwards.
type transport struct {
	c       *http.Client
	baseURL *url.URL
	logger  *slog.Logger
	tracer  trace.Tracer
}

// request performs exactly one round trip and returns the envelope's
// data payload. There is no retry or backoff; callers that want either
// must layer it themselves.
func (t *transport) request(ctx context.Context, method, path string, body any, query map[string]string) (json.RawMessage, error) {
	ctx, span := t.tracer.Start(ctx, "engivault.request")
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("path", path),
	)
	defer span.End()

	u := *t.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		params := url.Values{}
		for k, v := range query {
			params.Add(k, v)
		}
		u.RawQuery = params.Encode()
	}

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), &payload)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := t.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			t.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			t.logger.Error("failed to close response body", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return nil, t.statusError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Invalid JSON response",
			Err:        ErrAPI,
		}
	}

	if env.Success == nil || env.Timestamp == nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Invalid response format",
			Err:        ErrAPI,
		}
	}

	if !*env.Success {
		msg := "Unknown API error"
		if env.Error != nil && *env.Error != "" {
			msg = *env.Error
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Err:        ErrAPI,
		}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return json.RawMessage(`{}`), nil
	}

	return env.Data, nil
}

// statusError maps a non-2xx response to the error taxonomy. 401 and
// 429 take priority; everything else becomes a generic API error with
// the message pulled from the envelope when one was sent.
func (t *transport) statusError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	if err != nil {
		b = []byte("unable to read body")
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Invalid API key or token",
			Body:       string(b),
			Err:        ErrAuthentication,
		}
	case http.StatusTooManyRequests:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Rate limit exceeded",
			Body:       string(b),
			Err:        ErrRateLimit,
		}
	}

	msg := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, b)
	var env envelope
	if json.Unmarshal(b, &env) == nil && env.Error != nil && *env.Error != "" {
		msg = *env.Error
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Body:       string(b),
		Err:        ErrAPI,
	}
}

// decodeResult unmarshals envelope data into a typed result. Unknown
// wire fields are ignored for forward compatibility; a missing
// required field is a wire-layer fault and surfaces as an API error.
func decodeResult[T any](data json.RawMessage) (*T, error) {
	var out T

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, &APIError{
			Message: "Invalid response format: " + err.Error(),
			Err:     ErrAPI,
		}
	}

	for _, key := range requiredWireKeys(reflect.TypeOf(out)) {
		if _, ok := present[key]; !ok {
			return nil, &APIError{
				Message: fmt.Sprintf("Invalid response format: missing field %q", toSnake(key)),
				Err:     ErrAPI,
			}
		}
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &APIError{
			Message: "Invalid response format: " + err.Error(),
			Err:     ErrAPI,
		}
	}

	return &out, nil
}

// decodeObject unmarshals envelope data whose schema is defined
// server-side and not modeled by the SDK.
func decodeObject(data json.RawMessage) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &APIError{
			Message: "Invalid response format: " + err.Error(),
			Err:     ErrAPI,
		}
	}

	return out, nil
}

// requiredWireKeys lists the wire names of t's required fields. A
// field tagged omitempty is optional; everything else must arrive.
func requiredWireKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "omitempty") {
			continue
		}

		keys = append(keys, name)
	}

	return keys
}
