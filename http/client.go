package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"
)

const defaultUserAgent = "gistkit"

// Client represents an HTTP client with customizable options
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	headers    map[string]string
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: defaultUserAgent,
		headers:   make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL for the client
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for the client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithToken sets the token used for the Authorization header on
// every request. An empty token leaves requests unauthenticated.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		if token != "" {
			c.headers["Authorization"] = "token " + token
		}
	}
}

// WithUserAgent sets the User-Agent header for the client
func WithUserAgent(agent string) ClientOption {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying net/http client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// BaseURL returns the base URL the client was configured with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes an HTTP request and returns the buffered response with
// coarse timing information
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.Build(c.baseURL)
	if err != nil {
		return nil, err
	}

	for key, value := range c.headers {
		if _, ok := req.Headers[key]; !ok {
			httpReq.Header.Set(key, value)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if _, ok := req.Headers["User-Agent"]; !ok {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	timing := TimingInfo{StartTime: time.Now()}
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(timing.StartTime)
		},
	}
	httpReq = httpReq.WithContext(httptrace.WithClientTrace(ctx, trace))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, err
	}
	timing.TotalTime = time.Since(timing.StartTime)

	return &Response{
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		Headers:      httpResp.Header,
		ResponseTime: timing.TotalTime,
		Timing:       timing,
		rawBody:      bodyBytes,
	}, nil
}

// call executes a request and decodes a successful JSON response into
// out. Non-2xx responses become an *APIError.
func (c *Client) call(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return newAPIError(req.Method, req.Path, resp)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	return resp.JSON(out)
}

// Get performs a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.call(ctx, NewRequest(http.MethodGet, path).WithQuery(query), out)
}

// Post performs a POST request with a JSON body and decodes the
// response into out
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	req := NewRequest(http.MethodPost, path)
	if body != nil {
		req.WithBody(body)
	}
	return c.call(ctx, req, out)
}

// Patch performs a PATCH request with a JSON body and decodes the
// response into out
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	req := NewRequest(http.MethodPatch, path)
	if body != nil {
		req.WithBody(body)
	}
	return c.call(ctx, req, out)
}

// Put performs a PUT request and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	req := NewRequest(http.MethodPut, path)
	if body != nil {
		req.WithBody(body)
	}
	return c.call(ctx, req, out)
}

// Delete performs a DELETE request and decodes the response into out
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.call(ctx, NewRequest(http.MethodDelete, path), out)
}

// Boolean performs a request whose result is its HTTP status: any
// 2xx response yields true, any other status yields false without an
// error. Only transport failures (network, context) return an error.
func (c *Client) Boolean(ctx context.Context, method, path string, query url.Values) (bool, error) {
	resp, err := c.Do(ctx, NewRequest(method, path).WithQuery(query))
	if err != nil {
		return false, err
	}
	return resp.IsSuccess(), nil
}
