package tavily

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		if _, err := NewClient(Options{APIKey: key}); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("key %q: expected ErrMissingAPIKey, got %v", key, err)
		}
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if _, err := NewClientFromEnv(Options{APIKey: "ignored"}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	t.Setenv(APIKeyEnv, "tvly-test")
	c, err := NewClientFromEnv(Options{})
	if err != nil {
		t.Fatalf("NewClientFromEnv error: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("base url: got %q", c.BaseURL())
	}
}

func TestPostSendsHeadersAndBody(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"query":"q","results":[{"url":"https://a"}]}`)) //nolint:errcheck
	}))
	defer ts.Close()

	c, err := NewClient(Options{APIKey: "tvly-test", BaseURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	data, err := c.Post(context.Background(), "/search", map[string]any{"query": "q"})
	if err != nil {
		t.Fatalf("Post error: %v", err)
	}

	if gotPath != "/search" {
		t.Errorf("path: got %q", gotPath)
	}
	if gotAuth != "Bearer tvly-test" {
		t.Errorf("authorization: got %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("content-type: got %q", gotType)
	}
	if gotBody["query"] != "q" {
		t.Errorf("body: got %v", gotBody)
	}
	if string(data["results"]) != `[{"url":"https://a"}]` {
		t.Errorf("results: got %s", data["results"])
	}
}

func TestPostStatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantBody string
	}{
		{"json body", http.StatusNotFound, `{"error":"not found"}`, `{"error":"not found"}`},
		{"text body", http.StatusBadGateway, `upstream down`, `{"detail":"upstream down"}`},
		{"rate limited", http.StatusTooManyRequests, `{"detail":{"error":"slow down"}}`, `{"detail":{"error":"slow down"}}`},
		{"redirect", http.StatusFound, `{"moved":true}`, `{"moved":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/other" {
					t.Errorf("redirect must not be followed: %s %s", r.Method, r.URL.Path)
					w.Write([]byte(`{"results":[1]}`)) //nolint:errcheck
					return
				}
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "/other")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer ts.Close()

			c, _ := NewClient(Options{APIKey: "k", BaseURL: ts.URL})
			_, err := c.Post(context.Background(), "/crawl", map[string]any{"url": "x"})

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status: got %d", apiErr.StatusCode)
			}
			if !strings.HasSuffix(apiErr.Error(), tt.wantBody) {
				t.Errorf("message: got %q, want suffix %q", apiErr.Error(), tt.wantBody)
			}
		})
	}
}

func TestPostNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, _ := NewClient(Options{APIKey: "k", BaseURL: url})
	_, err := c.Post(context.Background(), "/map", map[string]any{"url": "x"})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "Network error while calling Tavily API: ") {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestPostTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c, _ := NewClient(Options{APIKey: "k", BaseURL: ts.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Post(context.Background(), "/search", map[string]any{"query": "x"})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
}

func TestPostInvalidJSONResponse(t *testing.T) {
	for _, body := range []string{`not json`, `null`, `[{"url":"x"}]`} {
		t.Run(body, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body)) //nolint:errcheck
			}))
			defer ts.Close()

			c, _ := NewClient(Options{APIKey: "k", BaseURL: ts.URL})
			data, err := c.Post(context.Background(), "/search", map[string]any{})
			if err == nil {
				t.Fatalf("expected decode error, got %v", data)
			}
			if !strings.HasPrefix(err.Error(), "decode response body") {
				t.Errorf("message: got %q", err.Error())
			}
		})
	}
}
