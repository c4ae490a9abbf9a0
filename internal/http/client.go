package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// Client is the pooled HTTP client shared by every request a version client
// makes. It is built on go-retryablehttp with retries switched off.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     dmc.Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger dmc.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying pooled client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// Request describes one HTTP call.
type Request struct {
	Method string
	// BaseURL overrides the client's base URL for this request.
	BaseURL string
	Path    string
	Query   url.Values
	// Body is encoded as JSON when non-nil.
	Body    interface{}
	Headers map[string]string
	// Timeout overrides the client's default timeout for this request.
	Timeout time.Duration
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out interface{}) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Body, out)
	if err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

// NewClient creates a new HTTP client.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs the request. A non-2xx response is returned together with a
// *dmc.APIError; a transport failure returns a nil response and a
// *dmc.APIError wrapping the cause.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = c.baseURL
	}

	fullURL := BuildURL(baseURL, req.Path, req.Query)

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var rawBody interface{}

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		rawBody = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		c.logError("HTTP request failed", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"error":  err.Error(),
		})

		return nil, dmc.NewTransportError(req.Method, fullURL, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, dmc.NewTransportError(req.Method, fullURL, fmt.Errorf("reading response body: %w", err))
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":   req.Method,
		"url":      fullURL,
		"status":   httpResp.StatusCode,
		"duration": time.Since(start).String(),
	})

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, dmc.NewStatusError(req.Method, fullURL, httpResp.StatusCode, body)
	}

	return resp, nil
}

// Post performs a POST request against the client's base URL.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// JoinURL concatenates a base URL and a path with exactly one slash between them.
func JoinURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// BuildURL joins baseURL and path and appends query, keeping any query
// string already present in path.
func BuildURL(baseURL, path string, query url.Values) string {
	fullURL := JoinURL(baseURL, path)
	if len(query) == 0 {
		return fullURL
	}

	separator := "?"
	if strings.Contains(fullURL, "?") {
		separator = "&"
	}

	return fullURL + separator + query.Encode()
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func (c *Client) logError(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Error(msg, fields)
	}
}

// noRetry stops after the first attempt. Retries are not part of the
// client's contract.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}
