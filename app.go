package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tavily-mcp/config"
	"tavily-mcp/internal/log"
	"tavily-mcp/internal/tavily"
	"tavily-mcp/internal/tool"
	"tavily-mcp/internal/tools/crawl"
	"tavily-mcp/internal/tools/extract"
	"tavily-mcp/internal/tools/search"
	"tavily-mcp/internal/tools/sitemap"
)

// app 进程级依赖，启动时创建一次
type app struct {
	cfg     *config.AppConfig
	logger  *zap.Logger
	manager *tool.ToolManager
}

// registerTools 注册全部 Tavily 工具
func registerTools(m *tool.ToolManager) {
	m.Register(search.ToolName, search.NewSearchTool)
	m.Register(extract.ToolName, extract.NewExtractTool)
	m.Register(crawl.ToolName, crawl.NewCrawlTool)
	m.Register(sitemap.ToolName, sitemap.NewMapTool)
}

// newApp 加载配置、初始化日志、创建 Tavily 客户端与工具。
// 缺少 TAVILY_API_KEY 时返回错误，任何工具都不会被创建。
func newApp(ctx context.Context, configPath, levelOverride string) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if levelOverride != "" {
		cfg.LogLevel = levelOverride
	}
	if err := config.LoadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}

	if err := log.Init(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	logger := log.GetLogger()

	client, err := tavily.NewClientFromEnv(cfg.ClientOptions())
	if err != nil {
		logger.Error("创建 Tavily 客户端失败", zap.Error(err))
		return nil, err
	}
	logger.Debug("Tavily 客户端已创建",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", cfg.Timeout),
		zap.Duration("connect_timeout", cfg.ConnectTimeout))

	manager := tool.NewToolManager(tool.Dependencies{
		Client: client,
		Logger: logger,
	})
	registerTools(manager)
	if err := manager.InitTools(ctx, cfg.Tools); err != nil {
		logger.Error("初始化工具失败", zap.Error(err))
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, manager: manager}, nil
}
