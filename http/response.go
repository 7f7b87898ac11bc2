package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"
)

// Response represents a buffered HTTP response
type Response struct {
	StatusCode   int
	Status       string
	Headers      http.Header
	ResponseTime time.Duration
	Timing       TimingInfo
	rawBody      []byte
}

// TimingInfo holds coarse request timing captured via httptrace
type TimingInfo struct {
	StartTime       time.Time
	TimeToFirstByte time.Duration
	TotalTime       time.Duration
}

// Body returns the response body as a byte slice. The body is fully
// buffered when the response is created, so this never fails.
func (r *Response) Body() []byte {
	return r.rawBody
}

// BodyString returns the response body as a string
func (r *Response) BodyString() string {
	return string(r.rawBody)
}

// JSON unmarshals the response body into the provided value
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.rawBody, v)
}

// GetHeader returns the value of the specified header
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// linkNextRe matches the rel="next" entry of an RFC 5988 Link header,
// e.g. <https://api.github.com/gists?page=2>; rel="next"
var linkNextRe = regexp.MustCompile(`<([^>]+)>\s*;\s*rel="next"`)

// NextPage returns the URL of the next page from the Link header, or
// an empty string when the response is the last page
func (r *Response) NextPage() string {
	for _, link := range r.Headers.Values("Link") {
		if m := linkNextRe.FindStringSubmatch(link); m != nil {
			return m[1]
		}
	}
	return ""
}
