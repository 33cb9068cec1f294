package extract

import (
	"context"

	"tavily-mcp/internal/operation"
	tol "tavily-mcp/internal/tool"
)

// ToolName 工具名
const ToolName = "tavily_extract"

// Spec extract 操作字段表。include_images / include_favicon 没有默认值，
// 与其他操作不同，未传入时不发送。
var Spec = &operation.Spec{
	Name:        ToolName,
	Label:       "extract",
	Description: "Extract the content of one or more web pages with Tavily.",
	Path:        "/extract",
	Required:    operation.Field{Name: "urls", Kind: operation.KindStringArray, Description: "URLs to extract content from"},
	Optional: []operation.Field{
		{Name: "include_images", Kind: operation.KindBoolean, Description: "Include images found on the pages"},
		{Name: "include_favicon", Kind: operation.KindBoolean, Description: "Include the favicon URL of each page"},
		{Name: "extract_depth", Kind: operation.KindString, Default: "basic", Description: "Extraction depth", Enum: []string{"basic", "advanced"}},
		{Name: "format", Kind: operation.KindString, Default: "markdown", Description: "Format of the extracted content", Enum: []string{"markdown", "text"}},
	},
	NoResults: "No extract results returned.",
}

// NewExtractTool 构造函数
func NewExtractTool(ctx context.Context, cfg tol.Config, deps tol.Dependencies) (tol.Tool, error) {
	return tol.NewOperationTool(Spec, cfg, deps)
}
