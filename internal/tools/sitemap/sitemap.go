// Package sitemap 实现 tavily_map 工具（map 是 Go 关键字）
package sitemap

import (
	"context"

	"tavily-mcp/internal/operation"
	tol "tavily-mcp/internal/tool"
)

// ToolName 工具名
const ToolName = "tavily_map"

// Spec map 操作字段表
var Spec = &operation.Spec{
	Name:        ToolName,
	Label:       "map",
	Description: "Map the structure of a website with Tavily and return the discovered URLs.",
	Path:        "/map",
	Required:    operation.Field{Name: "url", Kind: operation.KindString, Description: "Root URL to begin the mapping"},
	Optional: []operation.Field{
		{Name: "instructions", Kind: operation.KindString, Description: "Natural language instructions for the crawler"},
		{Name: "max_depth", Kind: operation.KindInteger, Description: "Max depth of the mapping from the base URL"},
		{Name: "max_breadth", Kind: operation.KindInteger, Description: "Max number of links to follow per page"},
		{Name: "limit", Kind: operation.KindInteger, Description: "Total number of links to process before stopping"},
		{Name: "select_paths", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of URL paths to include"},
		{Name: "exclude_paths", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of URL paths to exclude"},
		{Name: "select_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of domains to include"},
		{Name: "exclude_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of domains to exclude"},
		{Name: "allow_external", Kind: operation.KindBoolean, Default: true, Description: "Whether to follow links to external domains"},
		{Name: "categories", Kind: operation.KindStringArray, Default: []string{}, Description: "Predefined categories to focus the mapping on"},
	},
	NoResults: "No map results returned.",
}

// NewMapTool 构造函数
func NewMapTool(ctx context.Context, cfg tol.Config, deps tol.Dependencies) (tol.Tool, error) {
	return tol.NewOperationTool(Spec, cfg, deps)
}
