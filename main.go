package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"pallet-service/internal/config"
	"pallet-service/internal/pkg/banner"
	"pallet-service/internal/pkg/database"
	"pallet-service/internal/pkg/logger"
	"pallet-service/internal/pkg/version"
	"pallet-service/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 创建 CLI 应用
	cmd := &cli.Command{
		Name:    "pallet-service",
		Usage:   "托盘扫描与相机识别结果服务",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "sqlite 数据库文件路径，覆盖配置文件",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "监听端口，覆盖配置文件",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			if v := cmd.String("db"); v != "" {
				cfg.Database.Path = v
			}
			if v := cmd.String("port"); v != "" {
				cfg.Server.Port = v
			}

			return startApp(ctx, cfg)
		},
	}

	// 运行应用
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("应用程序启动失败: %v", err)
	}
}

// loadConfig 未指定配置文件时尝试默认位置，都不存在则只用默认值和环境变量
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		for _, candidate := range []string{"config.yaml", filepath.Join("config", "config.yaml")} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}

// startApp 启动应用程序的主要逻辑
func startApp(ctx context.Context, cfg *config.Config) error {
	// 初始化日志系统
	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("初始化日志系统失败: %w", err)
	}
	defer logger.Close()

	banner.Print(os.Stdout, version.Get())
	logger.Info("配置加载完成")

	// 初始化数据库
	db, err := database.Setup(cfg.Database)
	if err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	defer database.Close(db)
	logger.Infof("数据库初始化完成: %s", cfg.Database.Path)

	// 设置gin模式
	gin.SetMode(cfg.Server.Mode)

	r, err := router.New(cfg.Server, db, GetPageFS())
	if err != nil {
		return err
	}
	logger.Info("路由设置完成")

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("服务器启动中，端口: %s", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-ctx.Done():
	}

	logger.Info("收到退出信号，正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务器失败: %w", err)
	}
	return nil
}
