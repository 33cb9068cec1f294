package crawl

import (
	"context"

	"tavily-mcp/internal/operation"
	tol "tavily-mcp/internal/tool"
)

// ToolName 工具名
const ToolName = "tavily_crawl"

// Spec crawl 操作字段表
var Spec = &operation.Spec{
	Name:        ToolName,
	Label:       "crawl",
	Description: "Crawl a website starting from a base URL with Tavily and return the content of the visited pages.",
	Path:        "/crawl",
	Required:    operation.Field{Name: "url", Kind: operation.KindString, Description: "Root URL to begin the crawl"},
	Optional: []operation.Field{
		{Name: "instructions", Kind: operation.KindString, Description: "Natural language instructions for the crawler"},
		{Name: "max_depth", Kind: operation.KindInteger, Description: "Max depth of the crawl from the base URL"},
		{Name: "max_breadth", Kind: operation.KindInteger, Description: "Max number of links to follow per page"},
		{Name: "limit", Kind: operation.KindInteger, Description: "Total number of links to process before stopping"},
		{Name: "select_paths", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of URL paths to include"},
		{Name: "exclude_paths", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of URL paths to exclude"},
		{Name: "select_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of domains to include"},
		{Name: "exclude_domains", Kind: operation.KindStringArray, Default: []string{}, Description: "Regex patterns of domains to exclude"},
		{Name: "allow_external", Kind: operation.KindBoolean, Default: true, Description: "Whether to follow links to external domains"},
		{Name: "include_images", Kind: operation.KindBoolean, Default: false, Description: "Include images found on crawled pages"},
		{Name: "categories", Kind: operation.KindStringArray, Default: []string{}, Description: "Predefined categories to focus the crawl on"},
		{Name: "extract_depth", Kind: operation.KindString, Default: "basic", Description: "Extraction depth", Enum: []string{"basic", "advanced"}},
		{Name: "format", Kind: operation.KindString, Default: "markdown", Description: "Format of the extracted content", Enum: []string{"markdown", "text"}},
		{Name: "include_favicon", Kind: operation.KindBoolean, Default: false, Description: "Include the favicon URL of each page"},
	},
	NoResults: "No crawl results returned.",
}

// NewCrawlTool 构造函数
func NewCrawlTool(ctx context.Context, cfg tol.Config, deps tol.Dependencies) (tol.Tool, error) {
	return tol.NewOperationTool(Spec, cfg, deps)
}
