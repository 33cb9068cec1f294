package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"tavily-mcp/internal/operation"
)

// Tool 工具接口定义
type Tool interface {
	// GetDescriptor 返回工具描述信息（MCP元数据）
	GetDescriptor() *mcp.Tool
	// Execute MCP 入口，失败以 IsError 结果返回，不返回 Go error
	Execute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
	// Call 执行工具并返回带类型的结果
	Call(ctx context.Context, arguments any) operation.Result
	// Spec 返回操作定义（字段表、路径）
	Spec() *operation.Spec
	// Name 返回工具唯一标识
	Name() string
}

// Dependencies 公共依赖集合，进程启动时创建一次，所有工具共享
type Dependencies struct {
	Client operation.Poster // Tavily 传输层
	Logger *zap.Logger
}

// Config 单个工具的配置
type Config struct {
	Disabled    bool   `mapstructure:"disabled" json:"disabled"`
	Description string `mapstructure:"description" json:"description"` // 覆盖默认描述
}

// Constructor 工具构造函数类型（用于依赖注入）
type Constructor func(ctx context.Context, cfg Config, deps Dependencies) (Tool, error)
