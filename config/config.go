package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tavily-mcp/internal/tavily"
	"tavily-mcp/internal/tool"
)

// 传输方式
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// EnvPrefix 配置项环境变量前缀，如 TAVILY_MCP_TRANSPORT
const EnvPrefix = "TAVILY_MCP"

// AppConfig 应用整体配置
type AppConfig struct {
	ServerPort     string                 `mapstructure:"server_port"`
	Transport      string                 `mapstructure:"transport"`
	BaseURL        string                 `mapstructure:"base_url"`
	Timeout        time.Duration          `mapstructure:"timeout"`
	ConnectTimeout time.Duration          `mapstructure:"connect_timeout"`
	LogLevel       string                 `mapstructure:"log_level"`
	EnvFile        string                 `mapstructure:"env_file"`
	Tools          map[string]tool.Config `mapstructure:"tools"` // 工具配置
}

// LoadConfig 加载配置文件；文件不存在时使用默认值
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("server_port", "8080")
	v.SetDefault("transport", TransportStdio)
	v.SetDefault("base_url", tavily.DefaultBaseURL)
	v.SetDefault("timeout", tavily.DefaultTimeout.String())
	v.SetDefault("connect_timeout", tavily.DefaultConnectTimeout.String())
	v.SetDefault("log_level", "info")
	v.SetDefault("env_file", ".env")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config file failed: %w", err)
			}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}
	if cfg.Tools == nil {
		cfg.Tools = map[string]tool.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值
func (c *AppConfig) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("invalid transport %q: must be %s or %s", c.Transport, TransportStdio, TransportSSE)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be positive, got %s", c.ConnectTimeout)
	}
	if c.ConnectTimeout > c.Timeout {
		return fmt.Errorf("connect_timeout (%s) must not exceed timeout (%s)", c.ConnectTimeout, c.Timeout)
	}
	return nil
}

// LoadEnvFile 加载 .env 文件；文件不存在时忽略，已有环境变量不会被覆盖
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ClientOptions 转换为传输层配置（API 密钥只从环境变量读取）
func (c *AppConfig) ClientOptions() tavily.Options {
	return tavily.Options{
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
		ConnectTimeout: c.ConnectTimeout,
	}
}
