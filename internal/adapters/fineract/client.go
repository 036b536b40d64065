// Package fineract implements the gateway ports against the Apache Fineract
// REST API (api/v1). One method exists per remote endpoint the client uses.
package fineract

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"

	"github.com/openmf/fieldops/internal/core"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/observability/metrics"
	"github.com/openmf/fieldops/internal/observability/statsd"
)

const (
	tenantHeader = "Fineract-Platform-TenantId"
	maxBodyBytes = 8 << 20
)

var _ core.Gateway = (*Client)(nil)

// Config describes how to reach the remote API.
type Config struct {
	BaseURL            string
	Tenant             string
	Timeout            time.Duration
	InsecureSkipVerify bool
	// Auth signs outgoing requests. Nil sends unauthenticated requests.
	Auth Authenticator
	// HTTPClient overrides the client built by NewHTTPClient.
	HTTPClient *http.Client
	Metrics    statsd.Sink
	Logger     *slog.Logger
}

// Client is a typed client for the remote API. It is safe for concurrent use;
// identical concurrent GETs share a single round trip.
type Client struct {
	base    *url.URL
	tenant  string
	hc      *http.Client
	auth    Authenticator
	metrics statsd.Sink
	logger  *slog.Logger
	flight  singleflight.Group
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("fineract base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse fineract base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("fineract base url %q: unsupported scheme", raw)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc, err = NewHTTPClient(cfg.Timeout, cfg.InsecureSkipVerify)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tenant := strings.TrimSpace(cfg.Tenant)
	if tenant == "" {
		tenant = "default"
	}

	return &Client{
		base:    base,
		tenant:  tenant,
		hc:      hc,
		auth:    cfg.Auth,
		metrics: cfg.Metrics,
		logger:  logger.With("component", "fineract"),
	}, nil
}

// NewHTTPClient builds the default client: request timeout, a cookie jar
// scoped by public suffix and optional TLS verification bypass.
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) (*http.Client, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for demo servers
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &http.Client{Timeout: timeout, Transport: transport, Jar: jar}, nil
}

// HTTPClient exposes the underlying client, used by authenticators that
// need to call the API themselves.
func (c *Client) HTTPClient() *http.Client { return c.hc }

// endpoint resolves an escaped path (with optional query) against the base
// URL. Callers escape user-supplied segments with url.PathEscape.
func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	raw := strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	u.Path, u.RawPath = decoded, raw
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) error {
	target := c.endpoint(path, q)
	v, err, _ := c.flight.Do(target, func() (any, error) {
		return c.do(ctx, op, http.MethodGet, target, nil)
	})
	if err != nil {
		return err
	}
	return decode(op, v.([]byte), out)
}

// send performs a write request with a JSON body and decodes the response into out.
func (c *Client) send(ctx context.Context, op, method, path string, q url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = b
	}
	raw, err := c.do(ctx, op, method, c.endpoint(path, q), body)
	if err != nil {
		return err
	}
	return decode(op, raw, out)
}

func (c *Client) do(ctx context.Context, op, method, target string, body []byte) ([]byte, error) {
	start := time.Now()
	raw, status, err := c.roundTrip(ctx, method, target, body)
	metrics.EmitGatewayCall(c.metrics, metrics.GatewayCall{
		Op:       op,
		Method:   method,
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		var te *apperrors.TransportError
		if errors.As(err, &te) && te.Op == "" {
			te.Op = op
		}
		c.logger.WarnContext(ctx, "gateway request failed",
			"op", op, "method", method, "status", status, "error", err)
		return nil, err
	}
	c.logger.DebugContext(ctx, "gateway request", "op", op, "method", method, "status", status,
		"duration_ms", time.Since(start).Milliseconds())
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body []byte) ([]byte, int, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, 0, &apperrors.TransportError{Message: "invalid request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(tenantHeader, c.tenant)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		if err := c.auth.Authorize(ctx, req); err != nil {
			return nil, 0, err
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, &apperrors.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &apperrors.TransportError{Status: resp.StatusCode, Cause: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.auth != nil {
			c.auth.Invalidate()
		}
		return nil, resp.StatusCode, parseError(resp.StatusCode, raw)
	}
	return raw, resp.StatusCode, nil
}

func decode(op string, raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &apperrors.TransportError{Op: op, Message: "unexpected response from server", Body: raw, Cause: err}
	}
	return nil
}

// apiError is the error envelope returned by the remote API.
type apiError struct {
	DeveloperMessage   string `json:"developerMessage"`
	DefaultUserMessage string `json:"defaultUserMessage"`
	Errors             []struct {
		DeveloperMessage   string `json:"developerMessage"`
		DefaultUserMessage string `json:"defaultUserMessage"`
		ParameterName      string `json:"parameterName"`
	} `json:"errors"`
}

// parseError prefers the first field-level message over the generic one.
func parseError(status int, raw []byte) *apperrors.TransportError {
	te := &apperrors.TransportError{Status: status, Body: raw}
	var env apiError
	if err := json.Unmarshal(raw, &env); err != nil {
		return te
	}
	if len(env.Errors) > 0 && env.Errors[0].DefaultUserMessage != "" {
		te.Message = env.Errors[0].DefaultUserMessage
	} else {
		te.Message = env.DefaultUserMessage
	}
	return te
}
