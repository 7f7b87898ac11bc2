package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request represents an HTTP request before it is bound to a base URL
type Request struct {
	Method      string
	Path        string
	QueryParams url.Values
	Headers     map[string]string
	Body        interface{}
}

// NewRequest creates a new HTTP request for the given method and
// relative path
func NewRequest(method, path string) *Request {
	return &Request{
		Method:      method,
		Path:        path,
		QueryParams: make(url.Values),
		Headers:     make(map[string]string),
	}
}

// WithHeader adds a header to the request
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithQueryParam adds a query parameter to the request
func (r *Request) WithQueryParam(key, value string) *Request {
	r.QueryParams.Add(key, value)
	return r
}

// WithQuery merges a set of query parameters into the request
func (r *Request) WithQuery(query url.Values) *Request {
	for key, values := range query {
		for _, value := range values {
			r.QueryParams.Add(key, value)
		}
	}
	return r
}

// WithBody sets the body of the request. Strings, byte slices and
// io.Readers are sent verbatim; anything else is marshaled as JSON.
func (r *Request) WithBody(body interface{}) *Request {
	r.Body = body
	return r
}

// Build constructs an http.Request by joining the request path onto
// the given base URL
func (r *Request) Build(baseURL string) (*http.Request, error) {
	reqURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	// Join the base URL path with the request path. The path arrives
	// in escaped form (identifiers are path-escaped before
	// interpolation), so it is kept as the wire path verbatim instead
	// of being assigned to the decoded Path field, which would escape
	// it a second time. The path may also be absolute when it came
	// from a Link header cursor.
	if strings.HasPrefix(r.Path, "http://") || strings.HasPrefix(r.Path, "https://") {
		reqURL, err = url.Parse(r.Path)
		if err != nil {
			return nil, err
		}
	} else {
		escaped := "/" + strings.TrimLeft(r.Path, "/")
		if base := reqURL.EscapedPath(); base != "" {
			escaped = strings.TrimRight(base, "/") + escaped
		}
		unescaped, err := url.PathUnescape(escaped)
		if err != nil {
			return nil, err
		}
		reqURL.Path = unescaped
		reqURL.RawPath = escaped
	}

	// Merge query parameters with any already present on the URL
	query := reqURL.Query()
	for key, values := range r.QueryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	reqURL.RawQuery = query.Encode()

	var bodyReader io.Reader
	if r.Body != nil {
		switch body := r.Body.(type) {
		case string:
			bodyReader = strings.NewReader(body)
		case []byte:
			bodyReader = bytes.NewReader(body)
		case io.Reader:
			bodyReader = body
		default:
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, err
			}
			bodyReader = bytes.NewReader(jsonBody)
			if _, ok := r.Headers["Content-Type"]; !ok {
				r.Headers["Content-Type"] = "application/json"
			}
		}
	}

	req, err := http.NewRequest(r.Method, reqURL.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
