// Package tavily 封装所有 Tavily 工具共用的 HTTP 传输层
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL Tavily API 地址
	DefaultBaseURL = "https://api.tavily.com"
	// APIKeyEnv 保存 API 密钥的环境变量
	APIKeyEnv = "TAVILY_API_KEY"

	DefaultTimeout        = 30 * time.Second
	DefaultConnectTimeout = 10 * time.Second
)

// ErrMissingAPIKey 未配置 API 密钥（启动时致命错误）
var ErrMissingAPIKey = errors.New("TAVILY_API_KEY is not set. Please set it in your environment or .env file")

// Options 客户端配置
type Options struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	ConnectTimeout time.Duration
}

// Client Tavily API 客户端（构造后不可变，可并发使用）
type Client struct {
	baseURL string
	headers http.Header
	http    *http.Client
}

// NewClient 创建客户端；缺少 API 密钥时返回 ErrMissingAPIKey
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+opts.APIKey)
	headers.Set("Content-Type", "application/json")

	dialer := &net.Dialer{Timeout: opts.ConnectTimeout}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: opts.ConnectTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		headers: headers,
		http: &http.Client{
			Timeout:       opts.Timeout,
			Transport:     transport,
			CheckRedirect: noRedirect,
		},
	}, nil
}

// noRedirect 不跟随重定向，3xx 与其他非 2xx 一样按 APIError 处理
func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// NewClientFromEnv 从 TAVILY_API_KEY 读取密钥后创建客户端
func NewClientFromEnv(opts Options) (*Client, error) {
	opts.APIKey = os.Getenv(APIKeyEnv)
	return NewClient(opts)
}

// BaseURL 返回 API 根地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post 向 baseURL+path 发送 JSON 请求并解析响应对象（字段保留原始 JSON）。
// 非 2xx 返回 *APIError，网络层失败返回 *NetworkError，不重试。
func (c *Client) Post(ctx context.Context, path string, payload any) (map[string]json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	if data == nil {
		return nil, errors.New("decode response body: expected JSON object")
	}
	return data, nil
}
