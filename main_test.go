package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tavily-mcp/internal/tavily"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewAppMissingAPIKey(t *testing.T) {
	t.Setenv(tavily.APIKeyEnv, "")
	path := writeConfig(t, `{"env_file": ""}`)

	_, err := newApp(context.Background(), path, "error")
	if !errors.Is(err, tavily.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewAppRegistersTools(t *testing.T) {
	t.Setenv(tavily.APIKeyEnv, "tvly-test")
	path := writeConfig(t, `{"env_file": "", "tools": {"tavily_map": {"disabled": true}}}`)

	a, err := newApp(context.Background(), path, "error")
	if err != nil {
		t.Fatalf("newApp error: %v", err)
	}
	var names []string
	for _, tl := range a.manager.Tools() {
		names = append(names, tl.Name())
	}
	if strings.Join(names, ",") != "tavily_crawl,tavily_extract,tavily_search" {
		t.Errorf("tools: got %v", names)
	}
	if newMCPServer(a) == nil {
		t.Error("expected MCP server")
	}
}

func TestCallCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" || r.Header.Get("Authorization") != "Bearer tvly-test" {
			t.Errorf("unexpected request %s %q", r.URL.Path, r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"results":[{"title":"Paris weather"}]}`)) //nolint:errcheck
	}))
	defer ts.Close()

	t.Setenv(tavily.APIKeyEnv, "tvly-test")
	path := writeConfig(t, `{"env_file": "", "log_level": "error", "base_url": "`+ts.URL+`"}`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"call", "tavily_search", "--config", path, "--args", `{"query":"weather in Paris"}`})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	want := "[\n  {\n    \"title\": \"Paris weather\"\n  }\n]\n"
	if out.String() != want {
		t.Errorf("output:\n got %q\nwant %q", out.String(), want)
	}
}
