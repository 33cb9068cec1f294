package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"tavily-mcp/internal/operation"
)

// OperationTool 把一个 Tavily 操作包装成 Tool
type OperationTool struct {
	handler    *operation.Handler
	descriptor mcp.Tool
}

// NewOperationTool 按字段表创建工具；cfg.Description 非空时覆盖默认描述
func NewOperationTool(spec *operation.Spec, cfg Config, deps Dependencies) (Tool, error) {
	if deps.Client == nil {
		return nil, fmt.Errorf("tool %s: missing tavily client", spec.Name)
	}
	return &OperationTool{
		handler:    operation.NewHandler(spec, deps.Client, deps.Logger),
		descriptor: spec.MCPTool(cfg.Description),
	}, nil
}

// GetDescriptor 实现工具接口
func (t *OperationTool) GetDescriptor() *mcp.Tool {
	d := t.descriptor
	return &d
}

// Execute 实现工具接口
func (t *OperationTool) Execute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := t.handler.Execute(ctx, req.Params.Arguments)
	if !res.OK() {
		return mcp.NewToolResultError(res.String()), nil
	}
	return mcp.NewToolResultText(res.String()), nil
}

// Call 实现工具接口
func (t *OperationTool) Call(ctx context.Context, arguments any) operation.Result {
	return t.handler.Execute(ctx, arguments)
}

// Spec 实现工具接口
func (t *OperationTool) Spec() *operation.Spec {
	return t.handler.Spec()
}

// Name 实现工具接口
func (t *OperationTool) Name() string {
	return t.handler.Spec().Name
}
