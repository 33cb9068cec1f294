// Package einotool 把 Tavily 工具适配为 eino 的 InvokableTool，
// 便于在 eino 的 agent / graph 中直接使用。
package einotool

import (
	"context"

	etool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"tavily-mcp/internal/operation"
	tol "tavily-mcp/internal/tool"
)

// Tool eino 适配器
type Tool struct {
	impl tol.Tool
	info *schema.ToolInfo
}

var _ etool.InvokableTool = (*Tool)(nil)

// New 创建适配器；工具描述取自 MCP 描述（包含配置覆盖）
func New(t tol.Tool) *Tool {
	return &Tool{
		impl: t,
		info: &schema.ToolInfo{
			Name:        t.Name(),
			Desc:        t.GetDescriptor().Description,
			ParamsOneOf: schema.NewParamsOneOfByParams(params(t.Spec())),
		},
	}
}

// FromManager 适配管理器中所有已初始化的工具
func FromManager(m *tol.ToolManager) []etool.BaseTool {
	list := m.Tools()
	out := make([]etool.BaseTool, 0, len(list))
	for _, t := range list {
		out = append(out, New(t))
	}
	return out
}

// Info 实现 eino BaseTool
func (t *Tool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return t.info, nil
}

// InvokableRun 参数为 JSON 字符串，返回值与 MCP 入口一致：
// 结果 JSON、"No ... results returned."、"Invalid input: ..." 或 "Request failed: ..."。
// 失败不作为 error 返回。
func (t *Tool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...etool.Option) (string, error) {
	return t.impl.Call(ctx, argumentsInJSON).String(), nil
}

func params(spec *operation.Spec) map[string]*schema.ParameterInfo {
	out := make(map[string]*schema.ParameterInfo, len(spec.Optional)+1)
	for _, f := range spec.Fields() {
		p := &schema.ParameterInfo{
			Type:     dataType(f.Kind),
			Desc:     f.Description,
			Enum:     f.Enum,
			Required: f.Name == spec.Required.Name,
		}
		if f.Kind == operation.KindStringArray {
			p.ElemInfo = &schema.ParameterInfo{Type: schema.String}
		}
		out[f.Name] = p
	}
	return out
}

func dataType(k operation.Kind) schema.DataType {
	switch k {
	case operation.KindInteger:
		return schema.Integer
	case operation.KindNumber:
		return schema.Number
	case operation.KindBoolean:
		return schema.Boolean
	case operation.KindStringArray:
		return schema.Array
	default:
		return schema.String
	}
}
