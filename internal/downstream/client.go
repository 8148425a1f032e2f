// Package downstream holds the HTTP clients for the services the eligibility
// engine reads from. Every client shares one JSON transport with a per-service
// circuit breaker, a call timeout and a trace span per request.
package downstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"visitgate/pkg/platform/circuit"
	"visitgate/pkg/requestcontext"
)

const tracerName = "visitgate/internal/downstream"

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// Client performs JSON GET requests against one downstream service.
type Client struct {
	service string
	baseURL string
	http    *http.Client
	timeout time.Duration
	breaker *circuit.Breaker
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// NewClient creates a client for service rooted at baseURL.
func NewClient(service, baseURL string, opts ...Option) (*Client, error) {
	if service == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url for %s: %w", service, err)
	}

	c := &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		c.breaker = circuit.New(service)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c, nil
}

// GetJSON issues GET baseURL+path?query and decodes a 200 response into out.
// Every failure is returned as a *ServiceError.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	if !c.breaker.Allow() {
		return NewServiceError(ErrorServiceOutage, c.service, "circuit open", 0, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, c.service+" GET "+path, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", target),
		))
	defer span.End()

	err := c.do(ctx, target, out)
	c.record(ctx, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var se *ServiceError
		if errors.As(err, &se) && se.Status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", se.Status))
		}
	} else {
		span.SetAttributes(attribute.Int("http.response.status_code", http.StatusOK))
	}
	return err
}

func (c *Client) do(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return NewServiceError(ErrorInternal, c.service, "build request", 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return NewServiceError(ErrorTimeout, c.service, "request timed out", 0, err)
		}
		if errors.Is(err, context.Canceled) {
			return NewServiceError(ErrorInternal, c.service, "request canceled", 0, err)
		}
		return NewServiceError(ErrorServiceOutage, c.service, "request failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return NewServiceError(categorize(resp.StatusCode), c.service,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), resp.StatusCode,
			errors.New(strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewServiceError(ErrorBadData, c.service, "decode response", resp.StatusCode, err)
	}
	return nil
}

// record feeds the breaker. Only failures that say something about the
// service's health count against it; a call abandoned by the caller counts
// for nothing.
func (c *Client) record(ctx context.Context, err error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	var change circuit.StateChange
	if IsRetryable(err) {
		_, change = c.breaker.RecordFailure()
	} else {
		_, change = c.breaker.RecordSuccess()
	}
	if c.logger == nil {
		return
	}
	if change.Opened {
		c.logger.WarnContext(ctx, "downstream circuit opened", "service", c.service, "error", err)
	}
	if change.Closed {
		c.logger.InfoContext(ctx, "downstream circuit closed", "service", c.service)
	}
}
