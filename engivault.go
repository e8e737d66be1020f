package engivault

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Luqman-Ismat/engivault-go/throttle"
)

// Version is the SDK release, reported in the default User-Agent.
const Version = "1.0.0"

const (
	defaultBaseURL = "https://engivault-api-production.up.railway.app"
	defaultTimeout = 30 * time.Second
)

// Client is the entry point to the EngiVault API. Calculation methods
// hang off the per-domain services, all of which share one
// authenticated transport. A Client is safe for concurrent use; each
// call is independent and blocks until its single round trip completes
// or the configured timeout elapses.
type Client struct {
	t *transport

	Hydraulics     *HydraulicsService
	Pumps          *PumpsService
	HeatTransfer   *HeatTransferService
	FluidMechanics *FluidMechanicsService
	Equipment      *EquipmentService
	Analytics      *AnalyticsService
}

// New builds a Client from the given options. Exactly one credential
// form is required: an API key ([WithAPIKey]) or a bearer token
// ([WithToken]). Supplying neither is a configuration error; supplying
// both deterministically selects the token.
func New(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.apiKey == "" && opts.token == "" {
		return nil, fmt.Errorf("%w: either an api key or a bearer token must be provided", ErrConfiguration)
	}

	baseURL := opts.baseURL
	if baseURL == nil {
		u, err := url.Parse(defaultBaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing default base url: %w", err)
		}
		baseURL = u
	}

	hc := opts.client
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	if opts.timeout != nil {
		hc.Timeout = *opts.timeout
	}

	logger := opts.logger
	if logger == nil {
		logger = slog.Default()
	}

	var base http.RoundTripper
	switch {
	case opts.rt != nil:
		base = opts.rt
	case hc.Transport != nil:
		base = hc.Transport
	default:
		base = http.DefaultTransport
	}

	// Token over key when both were supplied.
	if opts.token != "" {
		base = authHeader{header: "Authorization", value: "Bearer " + opts.token, base: base}
	} else {
		base = authHeader{header: "X-API-Key", value: opts.apiKey, base: base}
	}

	ua := opts.userAgent
	if ua == "" {
		ua = "engivault-go/" + Version
	}
	base = userAgent{value: ua, base: base}

	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return logger }, base)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		base = rt
	}
	hc.Transport = base

	tracer := opts.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	t := &transport{
		c:       hc,
		baseURL: baseURL,
		logger:  logger,
		tracer:  tracer,
	}

	return &Client{
		t:              t,
		Hydraulics:     &HydraulicsService{t: t},
		Pumps:          &PumpsService{t: t},
		HeatTransfer:   &HeatTransferService{t: t},
		FluidMechanics: &FluidMechanicsService{t: t},
		Equipment:      &EquipmentService{t: t},
		Analytics:      &AnalyticsService{t: t},
	}, nil
}

// Health reports the API health status.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	data, err := c.t.request(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}

// Info returns API status and version information.
func (c *Client) Info(ctx context.Context) (map[string]any, error) {
	data, err := c.t.request(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}
