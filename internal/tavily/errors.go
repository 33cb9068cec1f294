package tavily

import (
	"encoding/json"
	"fmt"
)

// APIError 上游返回的非 2xx 响应
type APIError struct {
	StatusCode int
	// 错误响应体；非 JSON 时为 {"detail": 原始文本}
	Body any
}

func newAPIError(status int, raw []byte) *APIError {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		body = map[string]any{"detail": string(raw)}
	}
	return &APIError{StatusCode: status, Body: body}
}

func (e *APIError) Error() string {
	body, err := json.Marshal(e.Body)
	if err != nil {
		return fmt.Sprintf("Tavily API request failed with status %d: %v", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("Tavily API request failed with status %d: %s", e.StatusCode, body)
}

// NetworkError DNS、连接、TLS、超时等网络层错误
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error while calling Tavily API: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
