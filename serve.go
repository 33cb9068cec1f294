package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tavily-mcp/config"
)

var (
	serveTransport string
	servePort      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio or SSE",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "transport override: stdio or sse")
	serveCmd.Flags().StringVar(&servePort, "port", "", "SSE listen port override")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfgFile, logLevel)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	if serveTransport != "" {
		a.cfg.Transport = serveTransport
	}
	if servePort != "" {
		a.cfg.ServerPort = servePort
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	svr := newMCPServer(a)

	switch a.cfg.Transport {
	case config.TransportSSE:
		return serveSSE(ctx, a, svr)
	default:
		a.logger.Info("MCP服务启动（stdio）", zap.Int("tools", len(a.manager.Tools())))
		return server.ServeStdio(svr)
	}
}

// newMCPServer 创建 MCP 服务并注册全部工具
func newMCPServer(a *app) *server.MCPServer {
	svr := server.NewMCPServer("tavily-mcp", version, server.WithToolCapabilities(false))
	a.manager.RegisterToServer(svr)
	return svr
}

func serveSSE(ctx context.Context, a *app, svr *server.MCPServer) error {
	addr := fmt.Sprintf(":%s", a.cfg.ServerPort)
	sseServer := server.NewSSEServer(svr, server.WithBaseURL(fmt.Sprintf("http://localhost:%s", a.cfg.ServerPort)))

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(addr)
	}()
	a.logger.Info("MCP服务启动成功（SSE）", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.logger.Info("正在关闭MCP服务")
	return sseServer.Shutdown(shutdownCtx)
}
