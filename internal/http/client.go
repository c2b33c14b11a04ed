// Package http is the transport behind the teamwork.tf client: it turns an
// endpoint descriptor into one authenticated GET and returns the raw response.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
)

var keyPattern = regexp.MustCompile(`([?&]` + constants.APIKeyParam + `=)[^&#\s]*`)

// Client performs requests against the teamwork.tf API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	logger     teamwork.Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
	base       *http.Client
	registerer prometheus.Registerer
	metrics    *metrics
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger teamwork.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the transport timeout of a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient reuses the transport of an existing client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.base = client
	}
}

// WithMetrics registers request metrics with registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// NewClient creates a new HTTP client for baseURL authenticated with apiKey.
//
// Every request is a single attempt: the retrying transport is configured to
// never retry and to hand failures back unchanged.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:   ensureTrailingSlash(baseURL),
		apiKey:    apiKey,
		logger:    teamwork.NopLogger(),
		userAgent: constants.DefaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = teamwork.NopLogger()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if client.base != nil {
		httpClient := *client.base
		retryClient.HTTPClient = &httpClient
	}

	retryClient.HTTPClient.Timeout = client.timeout

	if client.debug {
		retryClient.RequestLogHook = client.logRequest
	}

	client.httpClient = retryClient

	if client.registerer != nil {
		m, err := newMetrics(client.registerer)
		if err != nil {
			client.logger.Warn("Request metrics disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			client.metrics = m
		}
	}

	return client
}

// neverRetry stops after the first attempt and surfaces context cancellation.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	err := ctx.Err()
	if err != nil {
		return false, fmt.Errorf("request context: %w", err)
	}

	return false, nil
}

// BuildURL returns the absolute URL for descriptor with the API key appended.
// The key is joined with "&" when the descriptor carries its own query string.
func (c *Client) BuildURL(descriptor string) string {
	descriptor = strings.TrimPrefix(descriptor, "/")

	delimiter := "?"
	if strings.Contains(descriptor, "?") {
		delimiter = "&"
	}

	return c.baseURL + descriptor + delimiter + constants.APIKeyParam + "=" + url.QueryEscape(c.apiKey)
}

// Request implements teamwork.Requester.
func (c *Client) Request(ctx context.Context, descriptor string) (*teamwork.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(descriptor), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", redactError(err))
	}

	req.Header.Set("Accept", constants.ContentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		c.metrics.observe(descriptor, constants.TransportErrorStatus, time.Since(start))

		return nil, fmt.Errorf("executing request: %w", redactError(err))
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(start)

	c.metrics.observe(descriptor, strconv.Itoa(resp.StatusCode), duration)

	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": resp.StatusCode,
			"duration":    duration.String(),
			"body":        truncate(body, constants.MaxLoggedBodyBytes),
		})
	}

	return &teamwork.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// ExecuteDefaults implements teamwork.ExecuteDefaulter so direct Execute calls
// log through the client's logger.
func (c *Client) ExecuteDefaults() []teamwork.ExecuteOption {
	return []teamwork.ExecuteOption{teamwork.WithLogger(c.logger)}
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     MaskKey(req.URL.String()),
		"attempt": attempt + 1,
	})
}

// MaskKey replaces the value of the key query parameter in rawURL.
func MaskKey(rawURL string) string {
	return keyPattern.ReplaceAllString(rawURL, "${1}"+constants.MaskedSecret)
}

// redactError masks the API key in URLs carried by transport errors.
func redactError(err error) error {
	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		urlErr.URL = MaskKey(urlErr.URL)
	}

	return err
}

func ensureTrailingSlash(baseURL string) string {
	if strings.HasSuffix(baseURL, "/") {
		return baseURL
	}

	return baseURL + "/"
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}

	return string(body[:limit]) + "..."
}
