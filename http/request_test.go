package http

import (
	"io"
	"net/url"
	"testing"
)

func TestRequest_Build(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		path        string
		expectedURL string
	}{
		{
			name:        "Base URL without path",
			baseURL:     "https://api.example.com",
			path:        "gists",
			expectedURL: "https://api.example.com/gists",
		},
		{
			name:        "Base URL with path",
			baseURL:     "https://example.com/api/v3",
			path:        "gists/abc123",
			expectedURL: "https://example.com/api/v3/gists/abc123",
		},
		{
			name:        "Leading slash on path",
			baseURL:     "https://api.example.com",
			path:        "/gists/abc123/star",
			expectedURL: "https://api.example.com/gists/abc123/star",
		},
		{
			name:        "Trailing slash on base",
			baseURL:     "https://example.com/api/",
			path:        "gists",
			expectedURL: "https://example.com/api/gists",
		},
		{
			name:        "Escaped segment stays single-escaped",
			baseURL:     "https://api.example.com",
			path:        "gists/a%2Fb%3Fc",
			expectedURL: "https://api.example.com/gists/a%2Fb%3Fc",
		},
		{
			name:        "Absolute path replaces base",
			baseURL:     "https://api.example.com",
			path:        "https://other.example.com/gists?page=2",
			expectedURL: "https://other.example.com/gists?page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest("GET", tt.path).Build(tt.baseURL)
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			if req.URL.String() != tt.expectedURL {
				t.Errorf("Expected URL %s, got %s", tt.expectedURL, req.URL.String())
			}
		})
	}
}

func TestRequest_BuildWithQuery(t *testing.T) {
	req := NewRequest("GET", "gists").
		WithQueryParam("since", "2024-01-01T00:00:00Z").
		WithQuery(url.Values{"page": {"2"}})

	httpReq, err := req.Build("https://api.example.com")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	query := httpReq.URL.Query()
	if query.Get("since") != "2024-01-01T00:00:00Z" {
		t.Errorf("Expected since param, got %q", query.Get("since"))
	}
	if query.Get("page") != "2" {
		t.Errorf("Expected page=2, got %q", query.Get("page"))
	}
}

func TestRequest_BuildWithJSONBody(t *testing.T) {
	req := NewRequest("POST", "gists").WithBody(map[string]interface{}{
		"description": "hello",
		"public":      true,
	})

	httpReq, err := req.Build("https://api.example.com")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if ct := httpReq.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	body, _ := io.ReadAll(httpReq.Body)
	expected := `{"description":"hello","public":true}`
	if string(body) != expected {
		t.Errorf("Expected body %s, got %s", expected, string(body))
	}
}

func TestRequest_BuildWithStringBody(t *testing.T) {
	req := NewRequest("POST", "gists").WithBody(`{"raw":true}`)

	httpReq, err := req.Build("https://api.example.com")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	body, _ := io.ReadAll(httpReq.Body)
	if string(body) != `{"raw":true}` {
		t.Errorf("Unexpected body: %s", string(body))
	}
}
