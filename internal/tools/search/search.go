package search

import (
	"context"

	"tavily-mcp/internal/operation"
	tol "tavily-mcp/internal/tool"
)

// ToolName 工具名
const ToolName = "tavily_search"

// Spec search 操作字段表
var Spec = &operation.Spec{
	Name:        ToolName,
	Label:       "search",
	Description: "Search the web with Tavily and return ranked results with titles, URLs and content snippets.",
	Path:        "/search",
	Required:    operation.Field{Name: "query", Kind: operation.KindString, Description: "Search query"},
	Optional: []operation.Field{
		{Name: "search_depth", Kind: operation.KindString, Description: "Depth of the search", Enum: []string{"basic", "advanced"}},
		{Name: "topic", Kind: operation.KindString, Default: "general", Description: "Search category", Enum: []string{"general", "news", "finance"}},
		{Name: "days", Kind: operation.KindInteger, Default: 3, Description: "Number of days back to include (news topic only)"},
		{Name: "time_range", Kind: operation.KindString, Description: "Time range back from today: day, week, month, year (or d, w, m, y)"},
		{Name: "start_date", Kind: operation.KindString, Description: "Only results published after this date (YYYY-MM-DD)"},
		{Name: "end_date", Kind: operation.KindString, Description: "Only results published before this date (YYYY-MM-DD)"},
		{Name: "max_results", Kind: operation.KindInteger, Default: 10, Description: "Maximum number of results"},
		{Name: "include_images", Kind: operation.KindBoolean, Default: false, Description: "Also perform an image search"},
		{Name: "include_image_descriptions", Kind: operation.KindBoolean, Default: false, Description: "Add a description to each image"},
		{Name: "include_raw_content", Kind: operation.KindBoolean, Default: false, Description: "Include the cleaned HTML content of each result"},
		{Name: "include_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Domains to restrict results to"},
		{Name: "exclude_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Domains to exclude from results"},
		{Name: "country", Kind: operation.KindString, Default: "", Description: "Boost results from this country (general topic only)"},
		{Name: "include_favicon", Kind: operation.KindBoolean, Default: false, Description: "Include the favicon URL of each result"},
	},
	NoResults: "No search results returned.",
}

// NewSearchTool 构造函数（实现 tool.Constructor）
func NewSearchTool(ctx context.Context, cfg tol.Config, deps tol.Dependencies) (tol.Tool, error) {
	return tol.NewOperationTool(Spec, cfg, deps)
}
