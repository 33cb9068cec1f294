// Package operation 实现四个 Tavily 工具共用的处理流程：
// 校验必填字段、组装请求体、调用上游、格式化 results。
package operation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Poster 上游传输层（*tavily.Client 实现）
type Poster interface {
	Post(ctx context.Context, path string, payload any) (map[string]json.RawMessage, error)
}

// Spec 描述一个上游操作
type Spec struct {
	// Name 工具名（如 tavily_search）
	Name        string
	Label       string // 日志里的操作名，如 search
	Description string
	Path        string
	Required    Field
	Optional    []Field
	// NoResults results 为空时返回的固定文本
	NoResults string
}

// Fields 必填字段在前，随后是可选字段
func (s *Spec) Fields() []Field {
	return append([]Field{s.Required}, s.Optional...)
}

// BuildPayload 组装请求体：必填字段 + 取值非 nil 的可选字段
func (s *Spec) BuildPayload(args map[string]any) map[string]any {
	payload := map[string]any{s.Required.Name: args[s.Required.Name]}
	for _, f := range s.Optional {
		if v := f.resolve(args); v != nil {
			payload[f.Name] = v
		}
	}
	return payload
}

// MCPTool 生成 MCP 工具描述
func (s *Spec) MCPTool(description string) mcp.Tool {
	if description == "" {
		description = s.Description
	}
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	opts = append(opts, s.Required.mcpOption(true))
	for _, f := range s.Optional {
		opts = append(opts, f.mcpOption(false))
	}
	return mcp.NewTool(s.Name, opts...)
}

// Handler 执行一个操作，无状态，可并发调用
type Handler struct {
	spec   *Spec
	client Poster
	logger *zap.Logger
	schema *requiredSchema
}

// NewHandler 创建处理器
func NewHandler(spec *Spec, client Poster, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		spec:   spec,
		client: client,
		logger: logger.With(zap.String("tool", spec.Name)),
		schema: newRequiredSchema(spec.Required.Name),
	}
}

// Spec 返回操作定义
func (h *Handler) Spec() *Spec {
	return h.spec
}

// Execute 执行一次调用。arguments 可以是 map、JSON 字符串或 nil；
// 所有失败都体现在 Result 中，不会 panic 到调用方。
func (h *Handler) Execute(ctx context.Context, arguments any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Unexpected error during Tavily "+h.spec.Label+" request", zap.Any("panic", r))
			res = failure(FailureUnexpected, fmt.Sprint(r))
		}
	}()

	args := normalizeArguments(arguments)

	ok, err := h.schema.validate(args)
	if err != nil {
		h.logger.Error("Unexpected error during Tavily "+h.spec.Label+" request", zap.Error(err))
		return failure(FailureUnexpected, err.Error())
	}
	if !ok {
		msg := fmt.Sprintf("Missing required field: '%s'", h.spec.Required.Name)
		h.logger.Warn("Validation error", zap.String("error", msg))
		return failure(FailureValidation, msg)
	}

	payload := h.spec.BuildPayload(args)
	h.logger.Info("Sending Tavily "+h.spec.Label+" request", zap.Any("payload", payload))

	data, err := h.client.Post(ctx, h.spec.Path, payload)
	if err != nil {
		h.logger.Error("Tavily "+h.spec.Label+" request failed", zap.Error(err))
		return failure(FailureRequest, err.Error())
	}
	h.logger.Debug("Received response", zap.Any("response", data))

	text, count, err := formatResults(data["results"])
	if err != nil {
		h.logger.Error("Unexpected error during Tavily "+h.spec.Label+" request", zap.Error(err))
		return failure(FailureUnexpected, err.Error())
	}
	if count == 0 {
		h.logger.Info(h.spec.NoResults)
		return success(h.spec.NoResults)
	}

	h.logger.Info("Returning "+h.spec.Label+" results", zap.Int("count", count))
	return success(text)
}

// normalizeArguments 兼容 map 与 JSON 字符串两种参数形式
func normalizeArguments(arguments any) map[string]any {
	switch arg := arguments.(type) {
	case map[string]any:
		if arg != nil {
			return arg
		}
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(arg), &m); err == nil && m != nil {
			return m
		}
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(arg, &m); err == nil && m != nil {
			return m
		}
	}
	return map[string]any{}
}

// formatResults 保留上游 JSON 的字段顺序，按两个空格缩进输出。
// count 为 0 表示 results 缺失或为空。
func formatResults(raw json.RawMessage) (string, int, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", 0, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", 0, fmt.Errorf("decode results: %w", err)
	}

	count := 1
	switch x := v.(type) {
	case nil:
		count = 0
	case []any:
		count = len(x)
	case map[string]any:
		count = len(x)
	case string:
		count = len(x)
	case bool:
		if !x {
			count = 0
		}
	case float64:
		if x == 0 {
			count = 0
		}
	}
	if count == 0 {
		return "", 0, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", 0, fmt.Errorf("format results: %w", err)
	}
	return buf.String(), count, nil
}
