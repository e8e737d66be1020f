package engivault

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Luqman-Ismat/engivault-go/throttle"
)

// Option is a functional option for configuring a [Client] via [New].
type Option func(*options) error

type options struct {
	apiKey    string
	token     string
	baseURL   *url.URL
	timeout   *time.Duration
	client    *http.Client
	rt        http.RoundTripper
	userAgent string
	throttle  *throttle.Config
	logger    *slog.Logger
	tracer    trace.Tracer
}

// WithAPIKey authenticates every request with the X-API-Key header
// scheme. When a bearer token is also supplied, the token wins.
func WithAPIKey(key string) Option {
	return func(o *options) error {
		if key == "" {
			return errors.New("api key must not be empty")
		}
		o.apiKey = key
		return nil
	}
}

// WithToken authenticates every request with the Authorization: Bearer
// header scheme. Takes precedence over an API key if both are given.
func WithToken(token string) Option {
	return func(o *options) error {
		if token == "" {
			return errors.New("token must not be empty")
		}
		o.token = token
		return nil
	}
}

// WithBaseURL overrides the production API endpoint. A trailing slash
// is dropped.
func WithBaseURL(raw string) Option {
	return func(o *options) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q must be absolute", raw)
		}
		o.baseURL = u
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying
// [http.Client]. This is the only cancellation knob besides the
// request context; there is no mid-flight cancellation API.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithHTTPClient replaces the default [http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base
// transport. The credential and User-Agent decorators wrap it.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithThrottle enables client-side token-bucket rate limiting with the
// given requests per second and burst capacity. Useful for staying
// under a subscription's limits instead of burning calls into 429s.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, throttle.ErrMustNotBeZero)
		}
		o.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer injects a tracer; each API call then runs inside its own
// client span. Tracing is a no-op otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// authHeader is an http.RoundTripper applying the credential header
// chosen at construction to every outgoing request. The scheme never
// switches post-construction.
type authHeader struct {
	header string
	value  string
	base   http.RoundTripper
}

func (a authHeader) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set(a.header, a.value)
	return a.base.RoundTrip(cpy)
}

// userAgent is an http.RoundTripper, enabling the persistent
// User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}
