package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" env:"PALLET_LOG_LEVEL"`    // 日志级别: debug, info, warn, error
	Format     string `yaml:"format" env:"PALLET_LOG_FORMAT"`  // 日志格式: json, text
	Output     string `yaml:"output" env:"PALLET_LOG_OUTPUT"`  // 输出方式: console, file, both
	FilePath   string `yaml:"file_path" env:"PALLET_LOG_FILE"` // 日志文件路径
	MaxSize    int    `yaml:"max_size"`                        // 单个日志文件最大大小(MB)
	MaxBackups int    `yaml:"max_backups"`                     // 保留的旧日志文件数量
	MaxAge     int    `yaml:"max_age"`                         // 日志文件保留天数
	Compress   bool   `yaml:"compress"`                        // 是否压缩旧日志文件
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path        string `yaml:"path" env:"PALLET_DB_PATH"`
	BusyTimeout int    `yaml:"busy_timeout"` // 毫秒
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Port           string   `yaml:"port" env:"PALLET_SERVER_PORT"`
	Mode           string   `yaml:"mode" env:"PALLET_SERVER_MODE"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// Default 返回全部为默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load 读取配置: 默认值 <- YAML文件 <- 环境变量
// path 为空时跳过文件，只使用默认值和环境变量
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}

	if c.Database.Path == "" {
		c.Database.Path = "requests.db"
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = 5000
	}

	// 日志配置默认值
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Output == "" {
		c.Log.Output = "console"
	}
	if c.Log.FilePath == "" {
		c.Log.FilePath = "logs/app.log"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100 // 100MB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = 28 // 28天
	}
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %s", c.Server.Mode)
	}
	if c.Database.BusyTimeout < 0 {
		return errors.New("database busy_timeout must not be negative")
	}
	return nil
}
