package operation

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Kind 参数类型
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindStringArray
)

// Field 工具参数定义。Default 为 nil 表示没有默认值，未传入时不进入请求体。
type Field struct {
	Name        string
	Kind        Kind
	Default     any
	Description string
	Enum        []string
}

// JSONType 字段对应的 JSON schema 类型名
func (f Field) JSONType() string {
	switch f.Kind {
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindStringArray:
		return "array"
	default:
		return "string"
	}
}

// resolve 按 arguments.get(name, default) 的语义取值，显式 null 视为未传入
func (f Field) resolve(args map[string]any) any {
	if v, ok := args[f.Name]; ok && v != nil {
		return v
	}
	return f.Default
}

// mcpOption 生成 MCP 输入参数描述
func (f Field) mcpOption(required bool) mcp.ToolOption {
	var props []mcp.PropertyOption
	if f.Description != "" {
		props = append(props, mcp.Description(f.Description))
	}
	if required {
		props = append(props, mcp.Required())
	}
	if len(f.Enum) > 0 {
		props = append(props, mcp.Enum(f.Enum...))
	}

	switch f.Kind {
	case KindInteger, KindNumber:
		if d, ok := f.Default.(int); ok {
			props = append(props, mcp.DefaultNumber(float64(d)))
		}
		return mcp.WithNumber(f.Name, props...)
	case KindBoolean:
		if d, ok := f.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(d))
		}
		return mcp.WithBoolean(f.Name, props...)
	case KindStringArray:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		return mcp.WithArray(f.Name, props...)
	default:
		if d, ok := f.Default.(string); ok {
			props = append(props, mcp.DefaultString(d))
		}
		return mcp.WithString(f.Name, props...)
	}
}
