package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error returned for a non-2xx response. Message and
// DocumentationURL are decoded from the API's JSON error body when
// present.
type APIError struct {
	StatusCode       int    `json:"-"`
	Method           string `json:"-"`
	Path             string `json:"-"`
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// newAPIError builds an APIError from a failed response
func newAPIError(method, path string, resp *Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
	}
	// Best effort; a non-JSON error body leaves Message empty
	_ = json.Unmarshal(resp.Body(), apiErr)
	return apiErr
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0 when err is
// not an APIError
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
