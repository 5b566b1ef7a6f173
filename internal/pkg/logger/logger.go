package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"pallet-service/internal/config"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	mu        sync.RWMutex
	Logger    *log.Logger
	logLevel  = INFO
	logFormat = "text"
	closer    io.Closer
)

// Setup 初始化日志系统
func Setup(cfg config.LogConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	format := strings.ToLower(cfg.Format)
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	// 设置输出方式
	var writer io.Writer
	var fileWriter *lumberjack.Logger
	switch strings.ToLower(cfg.Output) {
	case "console":
		writer = os.Stdout
	case "file":
		fileWriter, err = setupFileWriter(cfg)
		if err != nil {
			return err
		}
		writer = fileWriter
	case "both":
		fileWriter, err = setupFileWriter(cfg)
		if err != nil {
			return err
		}
		writer = io.MultiWriter(os.Stdout, fileWriter)
	default:
		return fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	mu.Lock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if fileWriter != nil {
		closer = fileWriter
	}
	Logger = log.New(writer, "", 0)
	logLevel = level
	logFormat = format
	mu.Unlock()

	Info("Logger initialized successfully")
	return nil
}

// SetOutput 替换输出目标，测试中使用
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	Logger = log.New(w, "", 0)
}

// Close 关闭日志文件
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn":
		return WARN, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("invalid log level: %s", level)
	}
}

// setupFileWriter 设置文件输出，按大小滚动
func setupFileWriter(cfg config.LogConfig) (*lumberjack.Logger, error) {
	// 确保日志目录存在
	logDir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}, nil
}

// formatMessage 格式化日志消息
func formatMessage(format, level, msg string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	if format == "json" {
		line, err := json.Marshal(struct {
			Time  string `json:"time"`
			Level string `json:"level"`
			Msg   string `json:"msg"`
		}{timestamp, level, msg})
		if err == nil {
			return string(line)
		}
	}
	return fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)
}

func output(level LogLevel, name, msg string) {
	mu.RLock()
	defer mu.RUnlock()
	if level < logLevel {
		return
	}
	l := Logger
	if l == nil {
		// 如果日志未初始化，使用默认配置
		l = log.New(os.Stdout, "", 0)
	}
	l.Print(formatMessage(logFormat, name, msg))
}

// GetLogger 获取日志实例
func GetLogger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if Logger == nil {
		Logger = log.New(os.Stdout, "", 0)
	}
	return Logger
}

// 便捷方法
func Debug(args ...interface{}) { output(DEBUG, "DEBUG", fmt.Sprint(args...)) }

func Debugf(format string, args ...interface{}) {
	output(DEBUG, "DEBUG", fmt.Sprintf(format, args...))
}

func Info(args ...interface{}) { output(INFO, "INFO", fmt.Sprint(args...)) }

func Infof(format string, args ...interface{}) {
	output(INFO, "INFO", fmt.Sprintf(format, args...))
}

func Warn(args ...interface{}) { output(WARN, "WARN", fmt.Sprint(args...)) }

func Warnf(format string, args ...interface{}) {
	output(WARN, "WARN", fmt.Sprintf(format, args...))
}

func Error(args ...interface{}) { output(ERROR, "ERROR", fmt.Sprint(args...)) }

func Errorf(format string, args ...interface{}) {
	output(ERROR, "ERROR", fmt.Sprintf(format, args...))
}

func Fatal(args ...interface{}) {
	output(FATAL, "FATAL", fmt.Sprint(args...))
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	output(FATAL, "FATAL", fmt.Sprintf(format, args...))
	os.Exit(1)
}
