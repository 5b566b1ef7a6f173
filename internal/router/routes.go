package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pallet-service/internal/api"
	"pallet-service/internal/config"
	"pallet-service/internal/middleware"
	"pallet-service/internal/service"
)

// New 创建 gin 引擎并挂载中间件和路由
func New(cfg config.ServerConfig, db *gorm.DB, pageFS http.FileSystem) (*gin.Engine, error) {
	// 不使用默认中间件
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	logs := service.NewRequestLogService(db)

	// 顺序: 请求ID -> 请求日志 -> panic恢复，保证500也能落日志
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logs))
	r.Use(middleware.Recovery())
	r.Use(middleware.Cors())

	SetupRoutes(r, db, pageFS)
	return r, nil
}

// SetupRoutes 配置所有路由
func SetupRoutes(r *gin.Engine, db *gorm.DB, pageFS http.FileSystem) {
	pallets := api.NewPalletAPI(service.NewPalletService(db))
	logs := api.NewLogAPI(service.NewRequestLogService(db))
	viewer := api.NewViewerAPI(service.NewViewerService(db))

	if pageFS != nil {
		r.GET("/", api.ServeIndex(pageFS))
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.SimpleHealthCheck)
		apiGroup.GET("/version", api.GetVersion)

		apiGroup.POST("/setpallet", pallets.SetPallet)
		apiGroup.POST("/getcamerares", pallets.GetCameraRes)

		apiGroup.GET("/logs", logs.GetLogs)
	}

	// 只读查看业务表
	tables := apiGroup.Group("/db")
	{
		tables.GET("", viewer.ListTables)
		tables.GET("/:table", viewer.GetTableRows)
	}
}
