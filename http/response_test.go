package http

import (
	"net/http"
	"testing"
)

func TestResponse_StatusHelpers(t *testing.T) {
	tests := []struct {
		status      int
		success     bool
		redirect    bool
		clientError bool
		serverError bool
	}{
		{status: 200, success: true},
		{status: 204, success: true},
		{status: 301, redirect: true},
		{status: 404, clientError: true},
		{status: 500, serverError: true},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.status}
		if resp.IsSuccess() != tt.success {
			t.Errorf("IsSuccess(%d) = %v, want %v", tt.status, resp.IsSuccess(), tt.success)
		}
		if resp.IsRedirect() != tt.redirect {
			t.Errorf("IsRedirect(%d) = %v, want %v", tt.status, resp.IsRedirect(), tt.redirect)
		}
		if resp.IsClientError() != tt.clientError {
			t.Errorf("IsClientError(%d) = %v, want %v", tt.status, resp.IsClientError(), tt.clientError)
		}
		if resp.IsServerError() != tt.serverError {
			t.Errorf("IsServerError(%d) = %v, want %v", tt.status, resp.IsServerError(), tt.serverError)
		}
	}
}

func TestResponse_JSON(t *testing.T) {
	resp := &Response{rawBody: []byte(`{"id":"abc","comments":3}`)}

	var out struct {
		ID       string `json:"id"`
		Comments int    `json:"comments"`
	}
	if err := resp.JSON(&out); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if out.ID != "abc" || out.Comments != 3 {
		t.Errorf("Unexpected decoded value: %+v", out)
	}
}

func TestResponse_NextPage(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "Next and last",
			link:     `<https://api.example.com/gists?page=2>; rel="next", <https://api.example.com/gists?page=9>; rel="last"`,
			expected: "https://api.example.com/gists?page=2",
		},
		{
			name:     "Only prev and first",
			link:     `<https://api.example.com/gists?page=1>; rel="prev", <https://api.example.com/gists?page=1>; rel="first"`,
			expected: "",
		},
		{
			name:     "No link header",
			link:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			if tt.link != "" {
				headers.Set("Link", tt.link)
			}
			resp := &Response{Headers: headers}
			if got := resp.NextPage(); got != tt.expected {
				t.Errorf("NextPage() = %q, want %q", got, tt.expected)
			}
		})
	}
}
